package cli

import (
	"context"
	"os"
	"strings"

	"umamiconnector/internal/adapters/credentials"
	"umamiconnector/internal/adapters/umami"
	"umamiconnector/internal/core/report"
	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/logger"
	"umamiconnector/internal/services/connector/domain"
	"umamiconnector/internal/services/connector/service"
)

// cliUser owns the token for the lifetime of one invocation
const cliUser = "cli"

// Execute implements the go-flags Commander interface for QueryCommand
func (c *QueryCommand) Execute(_ []string) error {
	initLogger(c.globals.Verbose)

	in, err := c.input()
	if err != nil {
		return err
	}
	up, err := umami.NewClient(umami.Options{
		Endpoint:  c.globals.Endpoint,
		UserAgent: c.globals.UserAgent,
		Timeout:   c.globals.Timeout,
	})
	if err != nil {
		return err
	}
	return c.run(context.Background(), up, in)
}

// run logs in (or seeds --token), fetches the report and prints it
func (c *QueryCommand) run(ctx context.Context, up domain.Upstream, in domain.DataInput) error {
	mem, err := credentials.NewMemory(1)
	if err != nil {
		return err
	}
	svc := service.New(up, mem, service.WithCatalog(report.Catalog{LegacyPageViews: c.globals.Legacy}))

	if err := c.authenticate(ctx, svc, mem); err != nil {
		return err
	}

	out, err := svc.Data(ctx, cliUser, in)
	if err != nil {
		if service.IsUnauthorized(err) {
			return perr.Wrap(err, perr.ErrorCodeUnauthorized, "umami rejected the token, log in again with --username and --password")
		}
		return err
	}
	return writeJSON(c.out, c.globals.Pretty, out)
}

func (c *QueryCommand) authenticate(ctx context.Context, svc *service.Svc, tokens credentials.Store) error {
	if tok := strings.TrimSpace(c.Token); tok != "" {
		return tokens.Set(ctx, credentials.UserKey(cliUser), tok)
	}
	if c.Username == "" || c.Password == "" {
		return perr.WithField(perr.Validationf("--username and --password are required without --token"), "username")
	}
	res, err := svc.SetCredentials(ctx, cliUser, domain.CredentialsInput{Username: c.Username, Password: c.Password})
	if err != nil {
		return err
	}
	if !res.Valid {
		return perr.Unauthorizedf("umami rejected the credentials for %q", c.Username)
	}
	return nil
}

// input merges the optional query file with flags; flags win
func (c *QueryCommand) input() (domain.DataInput, error) {
	var qf QueryFile
	if c.File != "" {
		var err error
		if qf, err = LoadQueryFile(c.File); err != nil {
			return domain.DataInput{}, err
		}
	}

	params := make(map[string]string, len(qf.Params)+len(c.Params)+2)
	for k, v := range qf.Params {
		params[k] = v
	}
	for k, v := range c.Params {
		params[k] = v
	}
	setIf(params, report.ParamAPIPath, qf.Kind)
	setIf(params, report.ParamAPIPath, c.Kind)
	setIf(params, report.ParamWebsiteID, qf.WebsiteID)
	setIf(params, report.ParamWebsiteID, c.WebsiteID)

	in := domain.DataInput{ConfigParams: params, Fields: qf.Fields}
	if len(c.Fields) > 0 {
		in.Fields = c.Fields
	}

	dr := domain.DateRange{}
	if qf.DateRange != nil {
		dr = domain.DateRange{StartDate: qf.DateRange.StartDate, EndDate: qf.DateRange.EndDate}
	}
	if c.Start != "" {
		dr.StartDate = c.Start
	}
	if c.End != "" {
		dr.EndDate = c.End
	}
	if dr.StartDate != "" || dr.EndDate != "" {
		in.DateRange = &dr
	}
	return in, nil
}

func setIf(m map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		m[key] = v
	}
}

// initLogger sends logs to stderr so stdout stays pure JSON
func initLogger(verbose bool) {
	opt := logger.FromEnv()
	opt.Level = "warn"
	if verbose {
		opt.Level = "debug"
	}
	opt.Writer = os.Stderr
	opt.Service = Name
	logger.Init(opt)
}
