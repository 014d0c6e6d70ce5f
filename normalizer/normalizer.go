// Package normalizer rewrites raw route records into their canonical
// form: placeholder names derived from context, implied parameters
// dropped, id parameters retyped, and descriptions filled in.
package normalizer

import (
	"errors"

	"github.com/octogen/octogen/ir"
)

// ErrAlreadyNormalized is returned when Normalize is called twice on the
// same record. The rule sequence is only defined for raw input; its
// behavior on its own output is not.
var ErrAlreadyNormalized = errors.New("route record already normalized")

// Rule is one rewrite step. Every rule is total: when its lookup finds
// nothing it leaves the record unchanged instead of failing.
type Rule struct {
	Name  string
	Apply func(*ir.RouteRecord)
}

// Rules is the fixed rewrite sequence. Order matters: each rule operates
// on the previous rule's output.
var Rules = []Rule{
	{"rewrite-generic-id", rewriteGenericID},
	{"drop-owner", dropOwner},
	{"rename-id-param", renameIDParam},
	{"coerce-id-types", coerceIDTypes},
	{"default-repo-description", defaultRepoDescription},
	{"synthesize-id-descriptions", synthesizeIDDescriptions},
	{"strip-alert-notice", stripAlertNotice},
	{"rewrite-array-types", rewriteArrayTypes},
	{"synthesize-subresource-url", synthesizeSubresourceURL},
}

// Normalize applies the rule sequence to rec in place. It must run at
// most once per record; a second call fails with ErrAlreadyNormalized and
// leaves the record untouched.
func Normalize(rec *ir.RouteRecord) error {
	if !rec.MarkNormalized() {
		return ErrAlreadyNormalized
	}
	for _, rule := range Rules {
		rule.Apply(rec)
	}
	return nil
}
