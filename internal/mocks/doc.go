// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline fakes in individual test files, test packages
// share these function-field mocks:
//
//	sub := &mocks.MockSubmitter{
//	    SubmitFn: func(ctx context.Context, prompt string) (string, error) {
//	        return "mocked text", nil
//	    },
//	}
//	client := generation.NewClient(logger, sub)
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Record calls so tests can assert on them
package mocks
