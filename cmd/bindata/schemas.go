package main

import "github.com/binwire/bindata"

// Demo schemas registered under DefaultRegistry, so the CLI has something
// concrete to parse/inspect without requiring the caller to write Go.
// These mirror the end-to-end scenarios worked through in the core
// package's own tests: an IPv4-style header with sibling-derived lengths,
// and a Pascal string whose length prefix is computed from its payload.

func init() {
	bindata.Register("ip_header", func(map[string]bindata.Expression) (bindata.Node, error) {
		return newIPHeader()
	})
	bindata.Register("pascal_string", func(map[string]bindata.Expression) (bindata.Node, error) {
		return newPascalString()
	})
}

func withParam(name string, e bindata.Expression) bindata.Option {
	return func(p bindata.Params) { p[name] = e }
}

func newIPHeader() (bindata.Node, error) {
	optsLen := bindata.Closure(func(s *bindata.Scope) (any, error) {
		hlen, err := s.MustInt64("hlen")
		if err != nil {
			return nil, err
		}
		return hlen*4 - 20, nil
	})
	dataLen := bindata.Closure(func(s *bindata.Scope) (any, error) {
		total, err := s.MustInt64("total_len")
		if err != nil {
			return nil, err
		}
		hlen, err := s.MustInt64("hlen")
		if err != nil {
			return nil, err
		}
		return total - hlen*4, nil
	})
	return bindata.NewStruct(bindata.BigEndian, []bindata.FieldDecl{
		{Name: "version", New: func(e bindata.Endian) (bindata.Node, error) { return bindata.BitInt(4, false, e) }},
		{Name: "hlen", New: func(e bindata.Endian) (bindata.Node, error) { return bindata.BitInt(4, false, e) }},
		{Name: "tos", New: func(e bindata.Endian) (bindata.Node, error) { return bindata.Int(8, false, e) }},
		{Name: "total_len", New: func(e bindata.Endian) (bindata.Node, error) { return bindata.Int(16, false, e) }},
		{Name: "opts", New: func(e bindata.Endian) (bindata.Node, error) {
			return bindata.FixedString(withParam("read_length", optsLen))
		}},
		{Name: "data", New: func(e bindata.Endian) (bindata.Node, error) {
			return bindata.FixedString(withParam("read_length", dataLen))
		}},
	})
}

func newPascalString() (bindata.Node, error) {
	lenValue := bindata.Closure(func(s *bindata.Scope) (any, error) {
		v, err := s.Get("data")
		if err != nil {
			return nil, err
		}
		str, _ := v.(string)
		return int64(len(str)), nil
	})
	dataLen := bindata.Closure(func(s *bindata.Scope) (any, error) {
		return s.MustInt64("len")
	})
	return bindata.NewStruct(bindata.BigEndian, []bindata.FieldDecl{
		{Name: "len", New: func(e bindata.Endian) (bindata.Node, error) {
			return bindata.Int(8, false, e, bindata.WithValue(lenValue))
		}},
		{Name: "data", New: func(e bindata.Endian) (bindata.Node, error) {
			return bindata.FixedString(withParam("read_length", dataLen))
		}},
	})
}
