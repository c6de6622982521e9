/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strconv"

// GetPort returns the explicit port if one was set, else the scheme's
// default: 443 for https, 80 for http.
func (h HostInfo) GetPort() uint16 {
	if h.Port != 0 {
		return h.Port
	}
	if h.Scheme == SchemeHTTPS {
		return defaultHTTPSPort
	}
	return defaultHTTPPort
}

// IsSSL reports whether this origin is reached over TLS.
func (h HostInfo) IsSSL() bool {
	return h.Scheme == SchemeHTTPS
}

func (h HostInfo) isDefaultPort() bool {
	if h.Port == 0 {
		return true
	}
	if h.Scheme == SchemeHTTPS {
		return h.Port == defaultHTTPSPort
	}
	return h.Port == defaultHTTPPort
}

// HostHeader renders the value to send as the wire Host header:
// hostname[:port], with the port omitted when it equals the scheme
// default.
func (h HostInfo) HostHeader() string {
	if h.isDefaultPort() {
		return h.Hostname
	}
	return h.Hostname + ":" + strconv.FormatUint(uint64(h.Port), 10)
}

// String renders the canonical scheme://[user[:pass]@]host[:port] form,
// eliding the port when it equals the scheme's default.
func (h HostInfo) String() string {
	var b []byte
	b = append(b, h.Scheme...)
	b = append(b, "://"...)
	if h.Username != "" {
		b = append(b, h.Username...)
		if h.Password != "" {
			b = append(b, ':')
			b = append(b, h.Password...)
		}
		b = append(b, '@')
	}
	b = append(b, h.Hostname...)
	if !h.isDefaultPort() {
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(h.Port), 10)
	}
	return string(b)
}
