package auth

import "context"

// TestLoginChecker is used in unit tests instead of the redis backed checker
type TestLoginChecker struct {
	LoggedSessions map[string]bool
}

func NewTestLoginChecker(loggedSessions map[string]bool) *TestLoginChecker {
	return &TestLoginChecker{
		LoggedSessions: loggedSessions,
	}
}

func (tc *TestLoginChecker) IsLogged(_ context.Context, token string) (bool, error) {
	return tc.LoggedSessions[token], nil
}
