package bindata

// Params collects raw, not-yet-sanitized parameter expressions, keyed by
// name, built up by Option functions before being handed to
// sanitizeParams. Every primitive/struct/array/choice constructor takes
// a ...Option tail, mirroring the teacher's fluent DocumentBuilder
// (AppendX methods returning *DocumentBuilder) but for schema
// declaration instead of value accumulation.
type Params map[string]Expression

// Option sets one named parameter on a pending Params map.
type Option func(Params)

// WithValue declares :value — a read-only computed field.
func WithValue(e Expression) Option { return func(p Params) { p["value"] = e } }

// WithInitialValue declares :initial_value — used only while clear.
func WithInitialValue(e Expression) Option { return func(p Params) { p["initial_value"] = e } }

// WithCheckValue declares :check_value — validated after every read.
func WithCheckValue(e Expression) Option { return func(p Params) { p["check_value"] = e } }

// WithAssert declares :assert — validated at the end of every read.
// Assign does not run it.
func WithAssert(e Expression) Option { return func(p Params) { p["assert"] = e } }

// WithCheckOffset declares :check_offset — mutually exclusive with
// WithAdjustOffset.
func WithCheckOffset(e Expression) Option { return func(p Params) { p["check_offset"] = e } }

// WithAdjustOffset declares :adjust_offset — mutually exclusive with
// WithCheckOffset.
func WithAdjustOffset(e Expression) Option { return func(p Params) { p["adjust_offset"] = e } }

// WithOnlyIf sets an "onlyif" parameter. No constructor accepts it, so
// passing it fails sanitization as an unknown parameter; Struct fields
// take :onlyif through FieldDecl.OnlyIf.
func WithOnlyIf(e Expression) Option { return func(p Params) { p["onlyif"] = e } }

// WithByteAlign sets a "byte_align" parameter. No constructor accepts it,
// so passing it fails sanitization as an unknown parameter; Struct fields
// take :byte_align through FieldDecl.ByteAlign.
func WithByteAlign(n int) Option { return func(p Params) { p["byte_align"] = Lit(int64(n)) } }

// applyOptions builds a Params map from a sequence of Option values.
func applyOptions(opts []Option) Params {
	p := Params{}
	for _, o := range opts {
		o(p)
	}
	return p
}

// commonPrimitiveDecl is the ParamDecl shared by every primitive family:
// every check-and-assert hook plus :value/:initial_value, none mandatory.
func commonPrimitiveDecl(extraOptional ...string) ParamDecl {
	optional := append([]string{
		"value", "initial_value", "check_value", "assert",
		"check_offset", "adjust_offset",
	}, extraOptional...)
	return ParamDecl{
		Optional:   optional,
		MutexPairs: [][2]string{{"check_offset", "adjust_offset"}},
	}
}

func bindCommonPrimitiveParams(p *BasePrimitive, sp *SanitizedParams) {
	if sp == nil {
		return
	}
	if e, ok := sp.Get("initial_value"); ok {
		p.initialValue = e
	}
	if e, ok := sp.Get("value"); ok {
		p.valueExpr = e
	}
	if e, ok := sp.Get("check_value"); ok {
		p.checkValueEx = e
	}
	if e, ok := sp.Get("check_offset"); ok {
		p.checkOffset = e
	}
	if e, ok := sp.Get("adjust_offset"); ok {
		p.adjustOffset = e
	}
	if e, ok := sp.Get("assert"); ok {
		p.assertExpr = e
	}
}
