/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// parser walks an input string byte by byte. It never backtracks across
// rules that have already committed.
type parser struct {
	s   string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.s) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) consumeLiteral(lit string) bool {
	if strings.HasPrefix(p.s[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scheme := "http" | "https"
func (p *parser) scheme() (string, bool) {
	if p.consumeLiteral(SchemeHTTPS) {
		return SchemeHTTPS, true
	}
	if p.consumeLiteral(SchemeHTTP) {
		return SchemeHTTP, true
	}
	return "", false
}

// label := alnum (alnum | "-")* alnum, or a single alnum.
func (p *parser) label() (string, bool) {
	start := p.pos
	if p.eof() || !isAlnum(p.peek()) {
		return "", false
	}
	p.pos++
	end := p.pos
	for !p.eof() && (isAlnum(p.peek()) || p.peek() == '-') {
		p.pos++
		if isAlnum(p.s[p.pos-1]) {
			end = p.pos
		}
	}
	p.pos = end
	return p.s[start:end], true
}

// hostname := label ("." label)*
func (p *parser) hostname() (string, bool) {
	start := p.pos
	lbl, ok := p.label()
	if !ok {
		return "", false
	}
	for !p.eof() && p.peek() == '.' {
		save := p.pos
		p.pos++
		if _, ok := p.label(); !ok {
			p.pos = save
			break
		}
	}
	_ = lbl
	return p.s[start:p.pos], true
}

// userchar excludes ':' and '@'.
func isUserChar(b byte) bool { return b != ':' && b != '@' && b > 0x20 && b < 0x7f }

// userpass := userchar+ [":" userchar+]
func (p *parser) userpass() (user, pass string, ok bool) {
	start := p.pos
	for !p.eof() && isUserChar(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", "", false
	}
	user = p.s[start:p.pos]
	if !p.eof() && p.peek() == ':' {
		p.pos++
		pstart := p.pos
		for !p.eof() && isUserChar(p.peek()) {
			p.pos++
		}
		if p.pos == pstart {
			p.pos = start
			return "", "", false
		}
		pass = p.s[pstart:p.pos]
	}
	return user, pass, true
}

// port := 1..65535
func (p *parser) port() (uint16, bool) {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n, err := strconv.ParseUint(p.s[start:p.pos], 10, 32)
	if err != nil || n == 0 || n > 65535 {
		p.pos = start
		return 0, false
	}
	return uint16(n), true
}

func isPChar(s string, i int) (width int, ok bool) {
	if s[i] == '%' {
		if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			return 3, true
		}
		return 0, false
	}
	b := s[i]
	if b == '&' || b == '=' || b == '?' || b <= 0x20 || b == 0x7f {
		return 0, false
	}
	return 1, true
}

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// path := "/" pchar*
func (p *parser) path() (string, bool) {
	if p.eof() || p.peek() != '/' {
		return "", false
	}
	start := p.pos
	p.pos++
	for !p.eof() && p.peek() != '?' {
		w, ok := isPChar(p.s, p.pos)
		if !ok {
			break
		}
		p.pos += w
	}
	return p.s[start:p.pos], true
}

// word excludes '&' and '='; percent-escapes retained verbatim.
func (p *parser) word() (string, bool) {
	start := p.pos
	for !p.eof() {
		b := p.peek()
		if b == '&' || b == '=' {
			break
		}
		w, ok := isPChar(p.s, p.pos)
		if !ok {
			break
		}
		p.pos += w
	}
	return p.s[start:p.pos], p.pos > start
}

// query := "?" pair ("&" pair)*, pair := word "=" word
func (p *parser) query() (Values, bool) {
	var vals Values
	if p.eof() || p.peek() != '?' {
		return vals, true
	}
	p.pos++
	for {
		key, ok := p.word()
		if !ok {
			return vals, false
		}
		if p.eof() || p.peek() != '=' {
			return vals, false
		}
		p.pos++
		val, _ := p.word()
		vals.Set(key, val)
		if !p.eof() && p.peek() == '&' {
			p.pos++
			continue
		}
		break
	}
	return vals, true
}

// Parse decomposes a URL string per an RFC 1738 subset grammar (scheme,
// optional userinfo, hostname, optional port, path, query). It fails with
// *MalformedURLError when the input does not parse in its entirety.
func Parse(raw string) (*URL, error) {
	p := &parser{s: raw}
	scheme, ok := p.scheme()
	if !ok || !p.consumeLiteral("://") {
		return nil, &MalformedURLError{Input: raw, Pos: p.pos}
	}

	var username, password string
	save := p.pos
	if u, pw, ok := p.userpass(); ok && !p.eof() && p.peek() == '@' {
		username, password = u, pw
		p.pos++
	} else {
		p.pos = save
	}

	host, ok := p.hostname()
	if !ok || host == "" {
		return nil, &MalformedURLError{Input: raw, Pos: p.pos}
	}
	host, err := normalizeHostname(host)
	if err != nil {
		return nil, &MalformedURLError{Input: raw, Pos: p.pos}
	}

	var port uint16
	if !p.eof() && p.peek() == ':' {
		save := p.pos
		p.pos++
		if pt, ok := p.port(); ok {
			port = pt
		} else {
			p.pos = save
		}
	}

	path, _ := p.path()

	query, ok := p.query()
	if !ok {
		return nil, &MalformedURLError{Input: raw, Pos: p.pos}
	}

	if !p.eof() {
		return nil, &MalformedURLError{Input: raw, Pos: p.pos}
	}

	return &URL{
		HostInfo: HostInfo{
			Scheme:   scheme,
			Hostname: host,
			Port:     port,
			Username: username,
			Password: password,
		},
		Path:  path,
		Query: query,
	}, nil
}

// normalizeHostname passes non-ASCII hostnames through IDNA so that the
// RFC 1738 label grammar (ASCII alnum/hyphen only) can accept them by their
// ASCII-compatible encoding. ASCII hostnames are returned unchanged.
func normalizeHostname(host string) (string, error) {
	for i := 0; i < len(host); i++ {
		if host[i] >= 0x80 {
			return idna.Lookup.ToASCII(host)
		}
	}
	return host, nil
}

// String renders the URL back to its canonical wire form. render(parse(u))
// reproduces u for any well-formed input after default-port elision.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString(u.HostInfo.String())
	b.WriteString(u.Path)
	if u.Query.Len() > 0 {
		b.WriteByte('?')
		for i, k := range u.Query.Keys {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(u.Query.Get(k))
		}
	}
	return b.String()
}
