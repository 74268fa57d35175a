package message

import (
	"errors"
	"testing"
)

func TestErrorCmd(t *testing.T) {
	err := errors.New("boom")

	msg, ok := ErrorCmd(err)().(ErrorMsg)
	if !ok || msg.Err != err {
		t.Errorf("ErrorCmd() produced %#v", msg)
	}
}

func TestFetchCmd(t *testing.T) {
	if _, ok := FetchCmd()().(FetchMsg); !ok {
		t.Error("FetchCmd() did not produce FetchMsg")
	}
}
