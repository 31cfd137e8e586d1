package bind

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/exitcode"
	"github.com/rudder-tools/rudder/textdist"
	"github.com/rudder-tools/rudder/usage"
)

// timestampLayouts are tried in order when parsing Timestamp values.
var timestampLayouts = []string{time.RFC3339, "2006-01-02"}

func convert(spec *cmdtree.ParameterSpec, t cmdtree.TypeDescriptor, raw string, bound *cmdtree.BoundArguments) (any, error) {
	switch t.Kind {
	case cmdtree.TypePrimitive:
		return convertPrimitive(spec, t.Primitive, raw)
	case cmdtree.TypeEnum:
		return convertEnum(spec, t.Enum, raw)
	case cmdtree.TypeStructured:
		return convertStructured(spec, t.Structured, raw, bound)
	case cmdtree.TypeCollection:
		return convertCollection(spec, t, raw, bound)
	}
	return nil, usage.Conversion(spec.Name, raw, t.Name())
}

func convertPrimitive(spec *cmdtree.ParameterSpec, k cmdtree.PrimitiveKind, raw string) (any, error) {
	fail := func() error {
		return usage.Conversion(spec.Name, raw, k.String())
	}

	switch k {
	case cmdtree.String:
		return raw, nil
	case cmdtree.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fail()
		}
		return v, nil
	case cmdtree.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fail()
		}
		return v, nil
	case cmdtree.Int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fail()
		}
		return v, nil
	case cmdtree.Uint:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fail()
		}
		return uint(v), nil
	case cmdtree.Float:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fail()
		}
		return v, nil
	case cmdtree.Rune:
		runes := []rune(raw)
		if len(runes) != 1 {
			return nil, fail()
		}
		return runes[0], nil
	}
	return nil, fail()
}

func convertEnum(spec *cmdtree.ParameterSpec, e *cmdtree.EnumType, raw string) (any, error) {
	if e.Flags {
		combined := 0
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			v, ok := e.Lookup(part)
			if !ok {
				return nil, enumError(spec, e, part)
			}
			combined |= v
		}
		return combined, nil
	}

	v, ok := e.Lookup(raw)
	if !ok {
		return nil, enumError(spec, e, raw)
	}
	return v, nil
}

// enumError is a conversion error carrying the nearest valid member name.
func enumError(spec *cmdtree.ParameterSpec, e *cmdtree.EnumType, value string) error {
	err := usage.Conversion(spec.Name, value, e.Name)
	err.Suggestion, _ = textdist.FindMostSimilar(value, e.MemberNames())
	return err
}

func convertStructured(spec *cmdtree.ParameterSpec, k cmdtree.StructuredKind, raw string, bound *cmdtree.BoundArguments) (any, error) {
	switch k {
	case cmdtree.URI:
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" {
			return nil, usage.Conversion(spec.Name, raw, k.String())
		}
		return u, nil

	case cmdtree.Timestamp:
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return nil, usage.Conversion(spec.Name, raw, k.String())

	case cmdtree.Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, usage.Conversion(spec.Name, raw, k.String())
		}
		return d, nil

	case cmdtree.UUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, usage.Conversion(spec.Name, raw, k.String())
		}
		return id, nil

	case cmdtree.FilePath, cmdtree.DirPath:
		if raw == "" {
			return nil, usage.Conversion(spec.Name, raw, k.String())
		}
		return filepath.Clean(raw), nil

	case cmdtree.InputFile:
		f, err := os.Open(raw)
		if err != nil {
			cerr := usage.Conversion(spec.Name, raw, k.String())
			if os.IsNotExist(err) {
				cerr.ExitCode = exitcode.NotFound
			} else if os.IsPermission(err) {
				cerr.ExitCode = exitcode.PermissionDenied
			}
			return nil, cerr
		}
		bound.AddCloser(f)
		return f, nil
	}

	return nil, usage.Conversion(spec.Name, raw, k.String())
}

// convertCollection splits raw on commas, trims surrounding whitespace on
// each element and converts them with the element type's rule. An empty
// raw value binds an empty collection.
func convertCollection(spec *cmdtree.ParameterSpec, t cmdtree.TypeDescriptor, raw string, bound *cmdtree.BoundArguments) (any, error) {
	stringElems := t.Elem.Kind == cmdtree.TypePrimitive && t.Elem.Primitive == cmdtree.String

	if raw == "" {
		if stringElems {
			return []string{}, nil
		}
		return []any{}, nil
	}

	parts := strings.Split(raw, ",")

	if stringElems {
		out := make([]string, len(parts))
		for i, p := range parts {
			out[i] = strings.TrimSpace(p)
		}
		return out, nil
	}

	out := make([]any, 0, len(parts))
	for _, p := range parts {
		v, err := convert(spec, *t.Elem, strings.TrimSpace(p), bound)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
