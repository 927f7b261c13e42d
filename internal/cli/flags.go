package cli

import (
	"io"
	"time"
)

// GlobalFlags holds flags available to every subcommand
type GlobalFlags struct {
	Endpoint  string        `long:"endpoint" env:"SERVICE_UMAMI_ENDPOINT" description:"Umami base URL"`
	UserAgent string        `long:"user-agent" env:"SERVICE_UMAMI_USER_AGENT" description:"User-Agent sent to Umami"`
	Timeout   time.Duration `long:"timeout" default:"10s" description:"Upstream request timeout"`
	Legacy    bool          `long:"legacy-pageviews" env:"CORE_API_LEGACY_PAGEVIEWS_SCHEMA" description:"Declare the two field pageviews schema"`
	Pretty    bool          `long:"pretty" description:"Indent JSON output"`
	Verbose   bool          `long:"verbose" short:"v" description:"Log upstream calls to stderr"`
	Version   bool          `long:"version" description:"Show version and exit"`
}

// SchemaCommand prints the declared schema of one kind
type SchemaCommand struct {
	Kind string `long:"kind" required:"true" description:"Report kind: active | events | pageviews | stats | metrics"`

	globals *GlobalFlags
	out     io.Writer
}

// QueryCommand fetches one report through the connector facade
type QueryCommand struct {
	File      string            `long:"file" short:"f" description:"YAML query file; flags override its values"`
	Username  string            `long:"username" env:"UMAMI_USERNAME" description:"Umami username"`
	Password  string            `long:"password" env:"UMAMI_PASSWORD" description:"Umami password"`
	Token     string            `long:"token" env:"UMAMI_TOKEN" description:"Existing bearer token, skips the login"`
	Kind      string            `long:"kind" description:"Report kind"`
	WebsiteID string            `long:"website" description:"Umami website id"`
	Params    map[string]string `long:"param" short:"p" description:"Extra config param as key:value (repeatable)"`
	Start     string            `long:"start" description:"Range start, 2006-01-02"`
	End       string            `long:"end" description:"Range end, 2006-01-02"`
	Fields    []string          `long:"field" description:"Only return these schema fields (repeatable)"`

	globals *GlobalFlags
	out     io.Writer
}
