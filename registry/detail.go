package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/hazyhaar/wellpipe/wellstore"
)

// NotAvailable marks a registry field the page did not carry.
const NotAvailable = "N/A"

var (
	sanitizePolicy = bluemonday.UGCPolicy()

	mdConverter = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
)

// The detail page renders fields as label/value table cells. After markdown
// conversion those become pipe-delimited rows, so the label patterns accept
// pipes, colons and emphasis markers between label and value.
var (
	detailStatusRe = regexp.MustCompile(`(?i)Well Status[\s|:*]+([A-Za-z /\-]+)`)
	detailTypeRe   = regexp.MustCompile(`(?i)Well Type[\s|:*]+([A-Za-z &/\-]+)`)
	detailCityRe   = regexp.MustCompile(`(?i)Closest City[\s|:*]+([A-Za-z \-'.]+)`)
	detailOilRe    = regexp.MustCompile(`(?i)(\d[\d,]*)\s+Barrels of Oil Produced`)
	detailGasRe    = regexp.MustCompile(`(?i)(\d[\d,]*)\s+MCF of Gas Produced`)

	detailSpaceRe = regexp.MustCompile(`\s+`)
)

// FetchDetail retrieves and parses one well detail page.
func (c *Client) FetchDetail(ctx context.Context, detailURL string) (wellstore.ScrapedInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailURL, nil)
	if err != nil {
		return wellstore.ScrapedInfo{}, fmt.Errorf("registry: new request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return wellstore.ScrapedInfo{}, fmt.Errorf("registry: fetch detail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return wellstore.ScrapedInfo{}, fmt.Errorf("registry: fetch detail: http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBytes))
	if err != nil {
		return wellstore.ScrapedInfo{}, fmt.Errorf("registry: read detail: %w", err)
	}

	return ParseDetail(htmlToText(string(body), detailURL)), nil
}

// ParseDetail extracts the five scraped fields from detail-page text.
// Missing fields come back as "N/A", matching what the registry itself
// shows for unknown values.
func ParseDetail(text string) wellstore.ScrapedInfo {
	grab := func(re *regexp.Regexp) string {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return NotAvailable
		}
		v := strings.TrimSpace(detailSpaceRe.ReplaceAllString(m[1], " "))
		if v == "" {
			return NotAvailable
		}
		return v
	}

	info := wellstore.ScrapedInfo{
		WellStatus:    grab(detailStatusRe),
		WellType:      grab(detailTypeRe),
		ClosestCity:   grab(detailCityRe),
		OilProduction: NotAvailable,
		GasProduction: NotAvailable,
	}
	if v := grab(detailOilRe); v != NotAvailable {
		info.OilProduction = v + " BBL"
	}
	if v := grab(detailGasRe); v != NotAvailable {
		info.GasProduction = v + " MCF"
	}
	return info
}

// htmlToText converts a detail page to text the field regexes can walk:
// sanitize, convert to markdown, and fall back to a raw DOM text walk when
// the conversion produces nothing.
func htmlToText(rawHTML, sourceURL string) string {
	clean := sanitizePolicy.Sanitize(rawHTML)

	md, err := mdConverter.ConvertString(clean, converter.WithDomain(sourceURL))
	if err == nil && strings.TrimSpace(md) != "" {
		return md
	}
	return collectText(clean)
}

// collectText extracts visible text nodes, newline-separated.
func collectText(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString(t)
			}
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}
