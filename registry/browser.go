package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

type browserHandle struct {
	browser *rod.Browser
	lnch    *launcher.Launcher
}

// Connect launches a headless Chrome and connects to it. Idempotent.
func (c *Client) Connect(ctx context.Context) error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New().
		Headless(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("user-agent", c.cfg.UserAgent)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("registry: launch chrome: %w", err)
	}

	b := rod.New().ControlURL(u).Context(ctx)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return fmt.Errorf("registry: connect: %w", err)
	}

	c.cfg.Logger.Info("registry: browser launched", "url", u)
	c.browser = &browserHandle{browser: b, lnch: l}
	return nil
}

// Close shuts down the browser, if one was launched.
func (c *Client) Close() error {
	if c.browser == nil {
		return nil
	}
	c.browser.browser.Close()
	c.browser.lnch.Cleanup()
	c.browser = nil
	return nil
}

// FindDetailURL drives the registry search form for one API number and
// returns the absolute URL of the first well detail result.
func (c *Client) FindDetailURL(ctx context.Context, apiNumber string) (string, error) {
	if c.browser == nil {
		return "", fmt.Errorf("registry: not connected")
	}

	searchCtx, cancel := context.WithTimeout(ctx, c.cfg.SearchTimeout)
	defer cancel()

	page, err := stealth.Page(c.browser.browser)
	if err != nil {
		return "", fmt.Errorf("registry: create page: %w", err)
	}
	defer page.Close()
	page = page.Context(searchCtx)

	if err := page.Navigate(c.cfg.BaseURL + "/search"); err != nil {
		return "", fmt.Errorf("registry: navigate search: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("registry: wait search page: %w", err)
	}

	input, err := page.Element(`input[name="api_no"]`)
	if err != nil {
		return "", fmt.Errorf("registry: api_no input: %w", err)
	}
	if err := input.SelectAllText(); err != nil {
		return "", fmt.Errorf("registry: clear input: %w", err)
	}
	if err := input.Input(apiNumber); err != nil {
		return "", fmt.Errorf("registry: type api number: %w", err)
	}

	submit, err := page.Element(`input[type="submit"][value="Search Database"]`)
	if err != nil {
		return "", fmt.Errorf("registry: submit button: %w", err)
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return "", fmt.Errorf("registry: submit search: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("registry: wait results: %w", err)
	}

	// Element blocks until the result link appears or the context expires.
	link, err := page.Element(`a[href*="/wells/"]`)
	if err != nil {
		return "", fmt.Errorf("registry: no well result for %s: %w", apiNumber, err)
	}
	href, err := link.Attribute("href")
	if err != nil || href == nil || *href == "" {
		return "", fmt.Errorf("registry: result link has no href for %s", apiNumber)
	}

	return c.resolveURL(*href)
}

// resolveURL makes relative result hrefs absolute against the base URL.
func (c *Client) resolveURL(href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("registry: parse href %q: %w", href, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("registry: parse base url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
