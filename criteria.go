package datagrid

import (
	"strings"

	nt "datagrid/entity"
)

// Criteria narrows the leads shown or exported.
// Zero fields, and nil pointers, constrain nothing.
type Criteria struct {
	Search        string
	Tier          string
	MinScore      *float64
	HasEmail      *bool
	EmailVerified *bool
	Fund          string
	Sector        string
	Stage         string
	CheckSize     string
	HQ            string
}

// Filter returns the conjunction of the criteria, searching term over searchFields.
func (crt Criteria) Filter(searchFields []string) nt.Filter {

	filter := nt.Filter{Op: nt.And}
	add := func(child nt.Filter) {
		filter.Children = append(filter.Children, child)
	}

	if crt.Tier != "" {
		add(nt.Filter{Op: nt.Eq, Field: "tier", Value: strings.ToUpper(crt.Tier)})
	}
	if crt.MinScore != nil {
		add(nt.Filter{Op: nt.Gte, Field: "score", Value: *crt.MinScore})
	}
	if crt.HasEmail != nil {
		// "N/A" is how scrapers mark a missing address
		hasEmail := nt.Filter{Op: nt.And, Children: []nt.Filter{
			{Op: nt.Ne, Field: "email", Value: "N/A"},
			{Op: nt.Ne, Field: "email", Value: ""},
		}}
		if !*crt.HasEmail {
			hasEmail = nt.Filter{Op: nt.Not, Children: []nt.Filter{hasEmail}}
		}
		add(hasEmail)
	}
	if crt.EmailVerified != nil {
		add(nt.Filter{Op: nt.Eq, Field: "email_verified", Value: *crt.EmailVerified})
	}

	for _, like := range []struct{ field, term string }{
		{"fund", crt.Fund},
		{"sectors", crt.Sector},
		{"stage", crt.Stage},
		{"check_size", crt.CheckSize},
		{"hq", crt.HQ},
	} {
		if like.term != "" {
			add(nt.Filter{Op: nt.Contains, Field: like.field, Value: like.term})
		}
	}

	search := Search(crt.Search, searchFields)
	if !search.Empty() {
		add(search)
	}

	if len(filter.Children) == 0 {
		return nt.Filter{}
	}
	return filter
}
