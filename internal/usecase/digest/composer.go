// Package digest turns a collection run into the delivery artefacts: an
// email-safe HTML fragment grouped by outlet, and the JSON envelope handed
// to downstream automation.
package digest

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
)

// maxPerSource caps how many articles one outlet may contribute to the
// digest. Feeds are newest-first, so the cap keeps the freshest ten.
const maxPerSource = 10

// sourceOrder is the fixed section order of the digest. Outlets not listed
// here are appended after, in first-seen order.
var sourceOrder = []string{
	entity.SourceBBC,
	entity.SourceGuardian,
	entity.SourceIndependent,
	entity.SourceSky,
}

// sourceColours maps each outlet to its brand accent colour. Unknown
// outlets fall back to a neutral grey.
var sourceColours = map[string]string{
	entity.SourceBBC:         "#bb1919",
	entity.SourceGuardian:    "#052962",
	entity.SourceIndependent: "#e8173d",
	entity.SourceSky:         "#003e7e",
}

const defaultColour = "#333333"

// Compose builds the digest HTML fragment for a set of collected articles.
//
// The output is meant to be pasted straight into an email body, so it uses
// inline CSS only (Gmail strips <style> blocks) and stays within a 700px
// column. Articles are grouped by source, sections follow sourceOrder, and
// each section is capped at maxPerSource entries. All upstream text is
// HTML-escaped before interpolation.
func Compose(articles []entity.Article, sessionLabel string, now time.Time) string {
	generatedAt := now.UTC().Format("02 January 2006, 15:04 UTC")

	bySource := make(map[string][]entity.Article)
	var seen []string
	for _, a := range articles {
		if _, ok := bySource[a.Source]; !ok {
			seen = append(seen, a.Source)
		}
		bySource[a.Source] = append(bySource[a.Source], a)
	}

	var ordered []string
	for _, s := range sourceOrder {
		if _, ok := bySource[s]; ok {
			ordered = append(ordered, s)
		}
	}
	for _, s := range seen {
		if !isPreferred(s) {
			ordered = append(ordered, s)
		}
	}

	var sections strings.Builder
	for _, source := range ordered {
		colour, ok := sourceColours[source]
		if !ok {
			colour = defaultColour
		}

		group := bySource[source]
		if len(group) > maxPerSource {
			group = group[:maxPerSource]
		}

		var rows strings.Builder
		for i, a := range group {
			bg := "#ffffff"
			if i%2 == 1 {
				bg = "#f7f9fc"
			}

			author := html.EscapeString(a.Author)
			if author == "" {
				author = "&mdash;"
			}
			date := a.PublishedDate
			if len(date) > 10 {
				date = date[:10]
			}

			fmt.Fprintf(&rows, `
      <tr>
        <td style="padding:10px 12px;border-bottom:1px solid #e0e0e0;background:%s;vertical-align:top;width:42%%;">
          <a href="%s" style="color:%s;text-decoration:none;font-weight:600;font-size:13px;line-height:1.4;" target="_blank">%s</a>
        </td>
        <td style="padding:10px 12px;border-bottom:1px solid #e0e0e0;background:%s;vertical-align:top;font-size:12px;color:#555;line-height:1.5;">
          %s
        </td>
        <td style="padding:10px 12px;border-bottom:1px solid #e0e0e0;background:%s;vertical-align:top;font-size:11px;color:#888;white-space:nowrap;">
          %s<br>%s
        </td>
      </tr>`,
				bg, html.EscapeString(a.URL), colour, html.EscapeString(a.Title),
				bg, html.EscapeString(a.Summary),
				bg, author, html.EscapeString(date))
		}

		fmt.Fprintf(&sections, `
  <tr>
    <td colspan="3" style="padding:18px 12px 6px;background:#ffffff;">
      <div style="border-left:4px solid %s;padding-left:10px;">
        <span style="font-size:15px;font-weight:700;color:%s;">%s</span>
        <span style="font-size:11px;color:#999;margin-left:8px;">%d articles</span>
      </div>
    </td>
  </tr>
%s
  <tr><td colspan="3" style="padding:8px;background:#ffffff;"></td></tr>`,
			colour, colour, html.EscapeString(source), len(group), rows.String())
	}

	labelText := ""
	if sessionLabel != "" {
		labelText = " &mdash; " + html.EscapeString(sessionLabel)
	}

	return fmt.Sprintf(`<div style="font-family:Arial,Helvetica,sans-serif;max-width:700px;margin:0 auto;background:#f0f2f5;padding:20px;">

  <!-- Header -->
  <table width="100%%" cellpadding="0" cellspacing="0" style="background:#0d1b2a;border-radius:8px 8px 0 0;">
    <tr>
      <td style="padding:20px 24px;">
        <div style="font-size:22px;font-weight:700;color:#ffffff;letter-spacing:-0.3px;">
          UK News Digest%s
        </div>
        <div style="font-size:12px;color:#aab4c0;margin-top:4px;">%s</div>
      </td>
      <td style="padding:20px 24px;text-align:right;vertical-align:middle;">
        <span style="font-size:28px;">🇬🇧</span>
      </td>
    </tr>
  </table>

  <!-- Articles table -->
  <table width="100%%" cellpadding="0" cellspacing="0"
         style="background:#ffffff;border-radius:0 0 8px 8px;border:1px solid #e0e0e0;border-top:none;">

    <!-- Column headers -->
    <tr style="background:#f5f5f5;">
      <th style="padding:9px 12px;text-align:left;font-size:11px;font-weight:600;color:#666;text-transform:uppercase;letter-spacing:0.5px;border-bottom:2px solid #e0e0e0;width:42%%;">Title</th>
      <th style="padding:9px 12px;text-align:left;font-size:11px;font-weight:600;color:#666;text-transform:uppercase;letter-spacing:0.5px;border-bottom:2px solid #e0e0e0;">Summary</th>
      <th style="padding:9px 12px;text-align:left;font-size:11px;font-weight:600;color:#666;text-transform:uppercase;letter-spacing:0.5px;border-bottom:2px solid #e0e0e0;width:14%%;">Author / Date</th>
    </tr>
%s
  </table>

  <!-- Footer -->
  <table width="100%%" cellpadding="0" cellspacing="0" style="margin-top:12px;">
    <tr>
      <td style="text-align:center;font-size:11px;color:#aaa;padding:8px;">
        Delivered by UK News Scraper &mdash; BBC News &bull; The Guardian &bull; The Independent &bull; Sky News
      </td>
    </tr>
  </table>

</div>`, labelText, generatedAt, sections.String())
}

func isPreferred(source string) bool {
	for _, s := range sourceOrder {
		if s == source {
			return true
		}
	}
	return false
}
