// Package validator builds declarative, translation-friendly validation
// rules on top of the emailvalidator predicates.
//
// Each constructor returns a Rule: a deferred boolean check plus the
// ValidationError reported when the check fails. Apply evaluates a set of
// rules and aggregates every failure into a ValidationErrors value, which
// implements error and matches ErrValidationFailed via errors.Is.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", form.Email),
//	    validator.EmailFormat("email", form.Email),
//	    validator.EmailDomain("work_email", form.WorkEmail, "example.com"),
//	    validator.EmailList("cc", form.CC),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        log.Printf("%s: %v", field, verrs.Get(field))
//	    }
//	}
//
// # Translation
//
// Every ValidationError carries a TranslationKey (validation.required,
// validation.email, validation.email_domain, validation.email_list) and the
// values needed to render a localised message.
//
// Rules hold no shared state and are safe to build and apply concurrently.
package validator
