// Package validator provides small composable validation rules that
// aggregate into a single error value.
//
// Every rule constructor returns a Rule pairing a boolean check with the
// field and message reported on failure. Apply evaluates rules in order and
// collects failures into ValidationErrors, which implements the error
// interface. The package holds no state and is safe for concurrent use.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MaxLen("name", name, 100),
//	    validator.ValidEmail("email", email),
//	)
//	if verr := validator.First(err); verr != nil {
//	    // verr.Field, verr.Message
//	}
//
// Rules compose naturally with per-field validators that expect a plain
// error return: a single-rule Apply yields an error whose message is the
// rule's failure reason.
package validator
