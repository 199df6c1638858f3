// Package errors provides the structured error handling used across the
// kbxy monster admin backend.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("monster not found")
//	err := errors.InvalidArgumentf("invalid attribute value: %f", value)
//
// Adding metadata:
//
//	err := errors.NotFound("monster not found").
//	    WithMeta("monster_id", monsterID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get monster")
//	}
//
// Changing error semantics:
//
//	if err := client.Get(ctx, key).Err(); err != nil {
//	    if errors.Is(err, redis.Nil) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "monster not found")
//	    }
//	    return errors.Wrap(err, "storage error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateNonNegative("attributes.speed", input.Attributes.Speed, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists, Aborted)
//   - Include relevant IDs in metadata
//   - Wrap Redis errors with context
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - FailedPrecondition: Operation requirements not met
//   - Aborted: Operation lost a concurrency race and should be retried
//   - Internal: Internal server error
//   - Unavailable: Storage temporarily unavailable
//   - Unimplemented: Feature not implemented
//   - Canceled: Operation canceled
package errors
