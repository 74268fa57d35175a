package main

import (
	"github.com/spf13/cobra"

	"datagrid"
)

// criteriaFlags are the lead filters shared by view and export.
type criteriaFlags struct {
	crt      datagrid.Criteria
	minScore float64
	hasEmail bool
	verified bool
}

func (cf *criteriaFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&cf.crt.Search, "search", "", "match term in the layout's search columns")
	flags.StringVar(&cf.crt.Tier, "tier", "", "only this tier, e.g. HOT")
	flags.Float64Var(&cf.minScore, "min-score", 0, "only scores at or above")
	flags.BoolVar(&cf.hasEmail, "has-email", false, "only leads with (or, =false, without) an email")
	flags.BoolVar(&cf.verified, "email-verified", false, "only leads whose email is (or, =false, is not) verified")
	flags.StringVar(&cf.crt.Fund, "fund", "", "fund contains")
	flags.StringVar(&cf.crt.Sector, "sector", "", "sectors contain")
	flags.StringVar(&cf.crt.Stage, "stage", "", "stage contains")
	flags.StringVar(&cf.crt.CheckSize, "check-size", "", "check size contains")
	flags.StringVar(&cf.crt.HQ, "hq", "", "hq contains")
}

// criteria returns the criteria, leaving unset optional flags nil.
func (cf *criteriaFlags) criteria(cmd *cobra.Command) datagrid.Criteria {

	crt := cf.crt
	flags := cmd.Flags()

	if flags.Changed("min-score") {
		crt.MinScore = &cf.minScore
	}
	if flags.Changed("has-email") {
		crt.HasEmail = &cf.hasEmail
	}
	if flags.Changed("email-verified") {
		crt.EmailVerified = &cf.verified
	}
	return crt
}
