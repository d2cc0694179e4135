// Package errors provides the structured error type used across the vagabond-api.
//
// Every layer returns *Error values carrying a Code, a user-facing message,
// an optional cause and free-form metadata:
//
//	err := errors.NotFoundf("actor %s not found", id)
//	err := errors.ResourceExhausted("not enough mana").
//	    WithMeta(errors.MetaReason, errors.ReasonInsufficientMana)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load actor")
//	}
//
// Ruleset validation failures (mana, spend limit, luck) are distinguished by the
// "reason" metadata key; see Reason and the Reason* constants.
//
// Handlers convert errors with ToGRPCError. Metadata travels to clients as a
// google.protobuf.Struct status detail and is restored by FromGRPCError.
package errors
