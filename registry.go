package conninfo

// KeywordSpec describes one recognized connection keyword: the environment
// variable consulted when the keyword is not given explicitly, and the
// compiled-in default used when the environment has nothing either. An empty
// EnvVar or Default means the keyword has none.
type KeywordSpec struct {
	Keyword string
	EnvVar  string
	Default string
}

// options is the keyword registry, in the order libpq's fe-connect.c declares
// its connection options. The order is load-bearing: parameters sourced from
// the environment or from defaults are emitted in registry order.
var options = []KeywordSpec{
	// keyword, environment variable, compiled-in default
	{"service", "PGSERVICE", ""},
	{"user", "PGUSER", ""},
	{"password", "PGPASSWORD", ""},
	{"passfile", "PGPASSFILE", ""},
	{"channel_binding", "PGCHANNELBINDING", "prefer"},
	{"connect_timeout", "PGCONNECT_TIMEOUT", ""},
	{"dbname", "PGDATABASE", ""},
	{"host", "PGHOST", "localhost"},
	{"hostaddr", "PGHOSTADDR", ""},
	{"port", "PGPORT", "5432"},
	{"client_encoding", "PGCLIENTENCODING", ""},
	{"options", "PGOPTIONS", ""},
	{"application_name", "PGAPPNAME", ""},
	{"fallback_application_name", "", ""},
	{"keepalives", "", ""},
	{"keepalives_idle", "", ""},
	{"keepalives_interval", "", ""},
	{"keepalives_count", "", ""},
	{"tcp_user_timeout", "", ""},
	{"sslmode", "PGSSLMODE", "prefer"},
	{"sslcompression", "PGSSLCOMPRESSION", "0"},
	{"sslcert", "PGSSLCERT", ""},
	{"sslkey", "PGSSLKEY", ""},
	{"sslpassword", "", ""},
	{"sslrootcert", "PGSSLROOTCERT", ""},
	{"sslcrl", "PGSSLCRL", ""},
	{"sslcrldir", "PGSSLCRLDIR", ""},
	{"sslsni", "PGSSLSNI", "1"},
	{"requirepeer", "PGREQUIREPEER", ""},
	{"requiressl", "PGREQUIRESSL", ""},
	{"ssl_min_protocol_version", "PGSSLMINPROTOCOLVERSION", "TLSv1.2"},
	{"ssl_max_protocol_version", "PGSSLMAXPROTOCOLVERSION", ""},
	{"gssencmode", "PGGSSENCMODE", "prefer"},
	{"krbsrvname", "PGKRBSRVNAME", "postgres"},
	{"gsslib", "PGGSSLIB", ""},
	{"replication", "", ""},
	{"target_session_attrs", "PGTARGETSESSIONATTRS", "any"},
}

var optionIndex = make(map[string]int, len(options))

func init() {
	for i, o := range options {
		optionIndex[o.Keyword] = i
	}
}

// lookupOption returns the registry entry for keyword. Keywords are matched
// case-sensitively, as libpq does.
func lookupOption(keyword string) (KeywordSpec, bool) {
	i, ok := optionIndex[keyword]
	if !ok {
		return KeywordSpec{}, false
	}
	return options[i], true
}

// Options returns a copy of the keyword registry in registry order.
func Options() []KeywordSpec {
	out := make([]KeywordSpec, len(options))
	copy(out, options)
	return out
}
