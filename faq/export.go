package faq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/missshiy01-dotcom/smart-faq-generator/model"
)

// ModelLabel is the fixed model attribution written into exports.
const ModelLabel = "Google Gemini 2.0 Flash"

// stubbed in tests
var now = time.Now

type jsonExport struct {
	Document    string          `json:"document"`
	GeneratedAt string          `json:"generated_at"`
	TotalFAQs   int             `json:"total_faqs"`
	Model       string          `json:"model"`
	FAQs        []model.FAQPair `json:"faqs"`
}

// ExportJSON serializes the FAQ set with document metadata as indented JSON.
func ExportJSON(faqs []model.FAQPair, document string) string {
	payload := jsonExport{
		Document:    document,
		GeneratedAt: now().Format(time.RFC3339),
		TotalFAQs:   len(faqs),
		Model:       ModelLabel,
		FAQs:        faqs,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		// a slice of string pairs cannot fail to encode
		return ""
	}
	return buf.String()
}

// ExportMarkdown renders the FAQ set as a Markdown document with one
// numbered section per pair.
func ExportMarkdown(faqs []model.FAQPair, document string) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# 📚 FAQs - %s\n\n", document)
	fmt.Fprintf(&md, "**Generated:** %s  \n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&md, "**Total Questions:** %d  \n\n---\n\n", len(faqs))

	for i, faq := range faqs {
		fmt.Fprintf(&md, "## %d. %s\n\n", i+1, faq.Question)
		fmt.Fprintf(&md, "**Answer:** %s\n\n---\n\n", faq.Answer)
	}
	return md.String()
}

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>FAQs - %s</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', system-ui, sans-serif;
            background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
            padding: 40px 20px;
            min-height: 100vh;
        }
        .container {
            max-width: 900px;
            margin: 0 auto;
            background: white;
            border-radius: 20px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.3);
            padding: 50px;
        }
        h1 { color: #2c3e50; text-align: center; margin-bottom: 30px; }
        .faq {
            margin: 25px 0;
            padding: 25px;
            background: linear-gradient(135deg, #f5f7fa 0%%, #c3cfe2 100%%);
            border-radius: 12px;
            border-left: 6px solid #667eea;
            transition: transform 0.3s;
        }
        .faq:hover { transform: translateY(-5px); box-shadow: 0 8px 20px rgba(0,0,0,0.1); }
        .question {
            font-size: 1.3em;
            font-weight: bold;
            color: #2c3e50;
            margin-bottom: 12px;
        }
        .answer { color: #34495e; line-height: 1.8; font-size: 1.05em; }
    </style>
</head>
<body>
    <div class="container">
        <h1>📚 %s</h1>
        <p style="text-align:center;color:#888;margin-bottom:30px;">
            Generated: %s | Total: %d FAQs
        </p>
`

// ExportHTML renders the FAQ set as a complete styled HTML document.
//
// Question and answer text is interpolated without HTML escaping to keep the
// output identical to the legacy format; content containing markup will be
// interpreted by the browser. See the export tests.
func ExportHTML(faqs []model.FAQPair, document string) string {
	var html strings.Builder
	fmt.Fprintf(&html, htmlHeader,
		document, document, now().Format("2006-01-02 15:04"), len(faqs))

	for i, faq := range faqs {
		fmt.Fprintf(&html, `
        <div class="faq">
            <div class="question">Q%d: %s</div>
            <div class="answer">%s</div>
        </div>
`, i+1, faq.Question, faq.Answer)
	}

	html.WriteString(`
    </div>
</body>
</html>
`)
	return html.String()
}
