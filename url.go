package conninfo

import (
	nurl "net/url"
	"strconv"
	"strings"
)

// parseURI decodes a postgresql:// (or postgres://) connection URI into
// pairs. Components occupy fixed slots: user, password, host, port, dbname,
// then query parameters in source order. Empty components are omitted; an
// empty query value ("?application_name=") is kept, since it is an explicit
// empty setting.
//
// Percent-decoding applies to every component. Unlike HTML form decoding,
// "+" is never turned into a space; libpq takes it literally.
func parseURI(uri string) ([]RawPair, error) {
	// net/url would silently stash a second "?" in the query and split off
	// fragments, so both are rejected up front on the raw string.
	if i := strings.Index(uri, "?"); i >= 0 && strings.Contains(uri[i+1:], "?") {
		return nil, syntaxErrorf(-1, `unexpected second "?" in connection URI`)
	}
	if strings.Contains(uri, "#") {
		return nil, syntaxErrorf(-1, `unexpected character "#" in connection URI`)
	}

	u, err := nurl.Parse(uri)
	if err != nil {
		if ue, ok := err.(*nurl.Error); ok {
			err = ue.Err
		}
		return nil, syntaxErrorf(-1, "cannot parse connection URI: %v", err)
	}
	if u.Scheme != "postgresql" && u.Scheme != "postgres" {
		return nil, syntaxErrorf(-1, "invalid connection protocol: %q", u.Scheme)
	}

	var pairs []RawPair

	if u.User != nil {
		pairs = appendPair(pairs, "user", u.User.Username())
		pw, _ := u.User.Password()
		pairs = appendPair(pairs, "password", pw)
	}

	if u.Host != "" {
		host, port, err := joinHostList(u.Host)
		if err != nil {
			return nil, err
		}
		pairs = appendPair(pairs, "host", host)
		pairs = appendPair(pairs, "port", port)
	}

	if u.Path != "" {
		pairs = appendPair(pairs, "dbname", strings.TrimPrefix(u.Path, "/"))
	}

	for _, seg := range strings.Split(u.RawQuery, "&") {
		if seg == "" {
			continue
		}
		rawKey, rawVal, found := strings.Cut(seg, "=")
		if !found {
			return nil, syntaxErrorf(-1, `missing key/value separator "=" in URI query parameter: %q`, rawKey)
		}
		if strings.Contains(rawVal, "=") {
			return nil, syntaxErrorf(-1, `extra key/value separator "=" in URI query parameter: %q`, rawKey)
		}
		key, err := decodeURIToken(rawKey)
		if err != nil {
			return nil, err
		}
		val, err := decodeURIToken(rawVal)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, RawPair{Keyword: key, Value: val})
	}

	for _, p := range pairs {
		if strings.ContainsRune(p.Keyword, 0) || strings.ContainsRune(p.Value, 0) {
			return nil, syntaxErrorf(-1, "forbidden value %%00 in percent-encoded value")
		}
	}

	return pairs, nil
}

// appendPair appends a keyword/value pair, dropping pairs with empty values.
// An empty URI component means "not specified", not "explicitly empty".
func appendPair(pairs []RawPair, keyword, value string) []RawPair {
	if value != "" {
		return append(pairs, RawPair{Keyword: keyword, Value: value})
	}
	return pairs
}

// joinHostList splits a URI host on commas and re-joins the halves into the
// comma-separated host and port lists of the keyword/value form, preserving
// source order. Hosts without a port contribute an empty port slot; when no
// host carries a port at all, the port list is empty.
func joinHostList(hostList string) (string, string, error) {
	segs := strings.Split(hostList, ",")
	hosts := make([]string, len(segs))
	ports := make([]string, len(segs))
	anyPort := false

	for i, seg := range segs {
		host, port, err := splitHostPort(seg)
		if err != nil {
			return "", "", err
		}
		if port != "" {
			if _, err := strconv.ParseUint(port, 10, 16); err != nil {
				return "", "", syntaxErrorf(-1, "invalid port number: %q", port)
			}
			anyPort = true
		}
		hosts[i], ports[i] = host, port
	}

	port := ""
	if anyPort {
		port = strings.Join(ports, ",")
	}
	return strings.Join(hosts, ","), port, nil
}

// splitHostPort splits one host-list segment into host and port. An IPv6
// literal keeps the content of its brackets; otherwise the port is whatever
// follows the first ":".
func splitHostPort(seg string) (string, string, error) {
	if strings.HasPrefix(seg, "[") {
		end := strings.Index(seg, "]")
		if end < 0 {
			return "", "", syntaxErrorf(-1, `end of string reached when looking for matching "]" in IPv6 host address`)
		}
		host := seg[1:end]
		rest := seg[end+1:]
		if rest == "" {
			return host, "", nil
		}
		if !strings.HasPrefix(rest, ":") {
			return "", "", syntaxErrorf(-1, `unexpected character after IPv6 host address in %q`, seg)
		}
		return host, rest[1:], nil
	}

	host, port, _ := strings.Cut(seg, ":")
	return host, port, nil
}

// decodeURIToken percent-decodes one query key or value. url.PathUnescape
// rather than url.QueryUnescape: the latter would rewrite "+" to a space.
func decodeURIToken(tok string) (string, error) {
	dec, err := nurl.PathUnescape(tok)
	if err != nil {
		return "", syntaxErrorf(-1, "invalid percent-encoded token: %q", tok)
	}
	return dec, nil
}
