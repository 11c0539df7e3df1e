package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/sportbooking/sportbook-web/internal/bootstrap"
	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/service"
)

const defaultCommandTimeout = 15 * time.Second

func runCheckToken(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("check-token", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultCommandTimeout, "maximum time to wait for the backend")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: check-token [-timeout 15s] <token>")
	}

	client, err := bootstrap.BuildBackendClient(cmdCtx.Config.Backend, nil, cmdCtx.Logger)
	if err != nil {
		return err
	}
	guard, err := service.NewSessionGuard(service.SessionGuardOptions{
		Validator: client,
		Policy:    cmdCtx.Config.Auth.FailurePolicy,
		Logger:    cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, *timeout)
	defer cancel()

	slot := &onceSlot{cred: domainauth.Credential(strings.TrimSpace(fs.Arg(0)))}
	res := guard.CheckAccess(ctx, slot)

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 0, 2, ' ', 0)
	if err := writef(tw, "State:\t%s\n", res.State); err != nil {
		return err
	}
	if err := writef(tw, "Reason:\t%s\n", res.Reason); err != nil {
		return err
	}
	if err := writef(tw, "Policy:\t%s\n", guard.Policy()); err != nil {
		return err
	}
	if err := writef(tw, "Credential kept:\t%t\n", !slot.Cleared()); err != nil {
		return err
	}
	if res.Err != nil {
		if err := writef(tw, "Error:\t%v\n", res.Err); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runGeocode(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("geocode", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultCommandTimeout, "maximum time to wait for the geocoder")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return errors.New("usage: geocode [-timeout 15s] <address>")
	}

	geoCfg := cmdCtx.Config.Geocode
	geoCfg.Enabled = true
	svc, err := bootstrap.BuildGeocodeService(geoCfg, nil, cmdCtx.Logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, *timeout)
	defer cancel()

	places, err := svc.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(places) == 0 {
		return writef(cmdCtx.Out, "No results in %s.\n", geoCfg.Region)
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 0, 2, ' ', 0)
	if err := writef(tw, "LAT\tLNG\tADDRESS\n"); err != nil {
		return err
	}
	for _, p := range places {
		if err := writef(tw, "%.6f\t%.6f\t%s\n", p.Lat, p.Lng, p.Address); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// onceSlot holds the token given on the command line for a single check.
type onceSlot struct {
	mu      sync.Mutex
	cred    domainauth.Credential
	cleared bool
}

var _ ports.CredentialSlot = (*onceSlot)(nil)

func (s *onceSlot) Get(context.Context) (domainauth.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred.IsZero() {
		return "", domainauth.ErrNoCredential
	}
	return s.cred, nil
}

func (s *onceSlot) Set(_ context.Context, cred domainauth.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

func (s *onceSlot) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = ""
	s.cleared = true
	return nil
}

func (s *onceSlot) Cleared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}
