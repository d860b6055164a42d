package writer

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
)

// The ODT export is a minimal OpenDocument text file built by hand: a zip
// archive whose first entry is the uncompressed mimetype, plus the manifest,
// styles and content parts. LibreOffice and Word both open it.

const odtMimetype = "application/vnd.oasis.opendocument.text"

const odtManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.text"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

const odtStyles = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
 xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
 xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
 office:version="1.2">
 <office:styles>
  <style:style style:name="Heading1" style:family="paragraph">
   <style:text-properties fo:font-size="18pt" fo:font-weight="bold" fo:color="#1a73e8"/>
  </style:style>
  <style:style style:name="Meta" style:family="paragraph">
   <style:text-properties fo:font-size="9pt" fo:color="#666666" fo:font-style="italic"/>
  </style:style>
  <style:style style:name="TableHeaderPara" style:family="paragraph">
   <style:paragraph-properties fo:background-color="#1a73e8"/>
   <style:text-properties fo:font-weight="bold" fo:color="#ffffff"/>
  </style:style>
  <style:style style:name="CellPara" style:family="paragraph">
   <style:text-properties fo:font-size="9pt"/>
  </style:style>
 </office:styles>
</office:document-styles>
`

const odtContentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
 xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
 xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
 xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
 xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
 xmlns:xlink="http://www.w3.org/1999/xlink"
 office:version="1.2">
 <office:automatic-styles>
  <style:style style:name="Col0" style:family="table-column">
   <style:table-column-properties style:column-width="3.0cm"/>
  </style:style>
  <style:style style:name="Col1" style:family="table-column">
   <style:table-column-properties style:column-width="7.0cm"/>
  </style:style>
  <style:style style:name="Col2" style:family="table-column">
   <style:table-column-properties style:column-width="8.5cm"/>
  </style:style>
  <style:style style:name="Col3" style:family="table-column">
   <style:table-column-properties style:column-width="4.0cm"/>
  </style:style>
  <style:style style:name="Col4" style:family="table-column">
   <style:table-column-properties style:column-width="3.5cm"/>
  </style:style>
 </office:automatic-styles>
 <office:body>
  <office:text>
`

const odtContentFooter = `  </office:text>
 </office:body>
</office:document-content>
`

// SaveODT writes the articles to filepath as an OpenDocument text file
// containing a title, a generation line, and one table row per article.
func SaveODT(articles []entity.Article, path string, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create odt file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	// The mimetype entry must come first and must be stored uncompressed,
	// per the OpenDocument packaging rules.
	mime, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return fmt.Errorf("create mimetype entry: %w", err)
	}
	if _, err := mime.Write([]byte(odtMimetype)); err != nil {
		return fmt.Errorf("write mimetype: %w", err)
	}

	entries := map[string]string{
		"META-INF/manifest.xml": odtManifest,
		"styles.xml":            odtStyles,
		"content.xml":           odtContent(articles, now),
	}
	for _, name := range []string{"META-INF/manifest.xml", "styles.xml", "content.xml"} {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create %s entry: %w", name, err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize odt archive: %w", err)
	}
	return nil
}

func odtContent(articles []entity.Article, now time.Time) string {
	var b strings.Builder
	b.WriteString(odtContentHeader)

	fmt.Fprintf(&b, "   <text:h text:outline-level=\"1\" text:style-name=\"Heading1\">%s</text:h>\n",
		odtEscape("UK News Articles"))
	fmt.Fprintf(&b, "   <text:p text:style-name=\"Meta\">Generated: %s  |  Total articles: %d</text:p>\n",
		now.UTC().Format("2006-01-02 15:04 UTC"), len(articles))

	b.WriteString("   <table:table table:name=\"Articles\">\n")
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, "    <table:table-column table:style-name=\"Col%d\"/>\n", i)
	}

	b.WriteString("    <table:table-row>\n")
	for _, col := range []string{"Source", "Title", "Summary", "Author", "Published"} {
		fmt.Fprintf(&b, "     <table:table-cell><text:p text:style-name=\"TableHeaderPara\">%s</text:p></table:table-cell>\n",
			odtEscape(col))
	}
	b.WriteString("    </table:table-row>\n")

	for _, a := range articles {
		b.WriteString("    <table:table-row>\n")
		writeODTCell(&b, a.Source)
		writeODTLinkCell(&b, a.Title, a.URL)
		writeODTCell(&b, a.Summary)
		writeODTCell(&b, a.Author)
		writeODTCell(&b, a.PublishedDate)
		b.WriteString("    </table:table-row>\n")
	}

	b.WriteString("   </table:table>\n")
	b.WriteString(odtContentFooter)
	return b.String()
}

func writeODTCell(b *strings.Builder, text string) {
	fmt.Fprintf(b, "     <table:table-cell><text:p text:style-name=\"CellPara\">%s</text:p></table:table-cell>\n",
		odtEscape(text))
}

func writeODTLinkCell(b *strings.Builder, text, url string) {
	if url == "" {
		writeODTCell(b, text)
		return
	}
	fmt.Fprintf(b, "     <table:table-cell><text:p text:style-name=\"CellPara\"><text:a xlink:type=\"simple\" xlink:href=\"%s\">%s</text:a></text:p></table:table-cell>\n",
		odtEscape(url), odtEscape(text))
}

func odtEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}
