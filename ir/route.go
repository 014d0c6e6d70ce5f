package ir

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RawRoute is the wire form of one endpoint description as read from a
// route file. Field presence is validated before a RouteRecord is built;
// anything beyond presence (schema correctness of enums, URL validity) is
// out of scope.
type RawRoute struct {
	Path             string     `json:"path" yaml:"path" validate:"required"`
	Method           string     `json:"method" yaml:"method" validate:"required,oneof=GET POST PATCH PUT DELETE"`
	Params           []RawParam `json:"params" yaml:"params"`
	DocumentationURL string     `json:"documentationUrl" yaml:"documentationUrl"`
}

// RawParam is the wire form of one parameter.
type RawParam struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Type        string   `json:"type" yaml:"type"`
	Required    bool     `json:"required" yaml:"required"`
	Enum        []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Description string   `json:"description" yaml:"description"`
}

// Parameter is one normalized route parameter. Names are unique within a
// record's parameter list after normalization.
type Parameter struct {
	Name        string
	Type        string
	Required    bool
	Enum        []string
	Description string
}

// RouteRecord is one endpoint description flowing through the pipeline.
// Path and Params are mutated in place exactly once, by normalization;
// OriginalPath is the immutable pre-normalization copy.
type RouteRecord struct {
	Path             PathTemplate
	Verb             string
	Params           []Parameter
	DocumentationURL string
	OriginalPath     PathTemplate

	normalized bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewRouteRecord validates a raw record and constructs a RouteRecord.
// A missing path or method, an unknown verb, a malformed path template,
// or a path with no literal segment is malformed input: the record is
// rejected without affecting any sibling record.
func NewRouteRecord(raw RawRoute) (*RouteRecord, error) {
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("invalid route record: %w", err)
	}

	path, err := ParsePath(raw.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid route record: %w", err)
	}
	if len(path.Literals()) == 0 {
		return nil, fmt.Errorf("invalid route record: path %q: %w", raw.Path, ErrNoLiterals)
	}

	params := make([]Parameter, 0, len(raw.Params))
	for _, rp := range raw.Params {
		if err := validate.Struct(rp); err != nil {
			return nil, fmt.Errorf("invalid parameter in route %q: %w", raw.Path, err)
		}
		params = append(params, Parameter{
			Name:        rp.Name,
			Type:        rp.Type,
			Required:    rp.Required,
			Enum:        rp.Enum,
			Description: rp.Description,
		})
	}

	return &RouteRecord{
		Path:             path,
		Verb:             raw.Method,
		Params:           params,
		DocumentationURL: raw.DocumentationURL,
		OriginalPath:     path.Clone(),
	}, nil
}

// Normalized reports whether the record has been through normalization.
func (r *RouteRecord) Normalized() bool {
	return r.normalized
}

// MarkNormalized records that normalization has started. It returns false
// if the record was already normalized, in which case the caller must not
// re-run the rule sequence.
func (r *RouteRecord) MarkNormalized() bool {
	if r.normalized {
		return false
	}
	r.normalized = true
	return true
}

// RemoveParam deletes every parameter with the given name, preserving the
// order of the rest. It reports whether anything was removed.
func (r *RouteRecord) RemoveParam(name string) bool {
	kept := r.Params[:0]
	removed := false
	for _, p := range r.Params {
		if p.Name == name {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	r.Params = kept
	return removed
}

// FindParam returns a pointer to the first parameter with the given name,
// or nil.
func (r *RouteRecord) FindParam(name string) *Parameter {
	for i := range r.Params {
		if r.Params[i].Name == name {
			return &r.Params[i]
		}
	}
	return nil
}
