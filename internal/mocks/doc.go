// Package mocks provides shared mock implementations for testing.
//
// Two styles are available. MockUserStore and MockTxRunner use function fields
// and an in-memory default, for tests that care about outcomes:
//
//	userStore := mocks.NewMockUserStore()
//	svc := service.NewUserService(userStore, &mocks.MockTxRunner{}, nil, logger)
//
// TestifyMockUserStore and TestifyMockUserService embed testify's mock.Mock,
// for tests that assert on exact calls.
package mocks
