package render

import (
	"fmt"
	"html/template"

	"github.com/ekosiswoyo/cv-generator/internal/model"
)

// Stylesheets are assembled in Go and handed to the template as a single
// trusted CSS block inlined into the generated page. The accent color and
// fonts become custom properties so every variant applies them uniformly.

const baseCSS = `
@page { size: A4; margin: 0; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { background: white; }
.cv-paper, .cover-letter {
  width: 210mm; min-height: 297mm; background: white; color: #1e293b;
  font-family: var(--body-font), Arial, sans-serif;
}
h1, h2, h3 { font-family: var(--header-font), sans-serif; }
.section { margin-bottom: 20px; }
.section-title {
  font-size: 13px; font-weight: 800; text-transform: uppercase;
  letter-spacing: 1.5px; padding-bottom: 4px; margin-bottom: 10px;
}
.summary-text { font-size: 11.5px; line-height: 1.6; color: #334155; }
.item { margin-bottom: 12px; }
.item-header { display: flex; justify-content: space-between; font-weight: 700; font-size: 12.5px; }
.item-subheading { font-style: italic; font-size: 11.5px; color: #475569; margin-bottom: 4px; }
.item-detail { font-size: 11px; line-height: 1.5; color: #334155; }
.item-date { color: var(--accent); font-weight: 700; font-size: 10px; text-transform: uppercase; }
.item-link { font-size: 10px; color: #64748b; }
.bar { height: 4px; background: #e2e8f0; border-radius: 2px; margin: 4px 0 2px; }
.bar-fill { height: 100%; background: var(--accent); border-radius: 2px; }
.photo { width: 85px; height: 85px; border-radius: 50%; overflow: hidden; border: 3px solid var(--accent); flex-shrink: 0; }
.photo img { width: 100%; height: 100%; object-fit: cover; }
.qr { display: flex; flex-direction: column; align-items: center; gap: 4px; }
.qr img { width: 65px; height: 65px; border: 1px solid #e2e8f0; padding: 2px; }
.qr span { font-size: 8px; color: #94a3b8; font-weight: 700; text-transform: uppercase; }
.contact { font-size: 11px; color: #64748b; line-height: 1.5; }
`

var variantCSS = map[model.Template]string{
	model.TemplateModernATS: `
.variant-modern-ats { padding: 40px; }
.variant-modern-ats .header { display: flex; justify-content: space-between; gap: 20px; border-bottom: 2px solid var(--accent); padding-bottom: 20px; margin-bottom: 30px; }
.variant-modern-ats .header-left { display: flex; align-items: center; gap: 25px; }
.variant-modern-ats .name { font-size: 28px; color: var(--accent); font-weight: 800; line-height: 1.1; }
.variant-modern-ats .job-title { font-size: 16px; color: #475569; font-weight: 600; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px; }
.variant-modern-ats .section-title { color: var(--accent); border-bottom: 1.5px solid #e2e8f0; }
`,
	model.TemplateClassicFormal: `
.variant-classic-ats { padding: 45px 50px; font-family: Georgia, 'Times New Roman', serif; }
.variant-classic-ats .header { text-align: center; border-bottom: 1px solid #1e293b; padding-bottom: 16px; margin-bottom: 24px; }
.variant-classic-ats .header-left { display: flex; flex-direction: column; align-items: center; gap: 10px; }
.variant-classic-ats .name { font-size: 26px; font-weight: 700; letter-spacing: 1px; }
.variant-classic-ats .job-title { font-size: 14px; color: #475569; text-transform: uppercase; letter-spacing: 2px; margin-bottom: 6px; }
.variant-classic-ats .section-title { color: #1e293b; border-bottom: 1px solid #cbd5e1; letter-spacing: 2px; }
.variant-classic-ats .item-date { color: #475569; }
`,
	model.TemplateMinimalist: `
.variant-minimalist .columns { display: grid; grid-template-columns: 220px 1fr; min-height: 297mm; }
.variant-minimalist .header { padding: 35px 40px 0; }
.variant-minimalist .name { font-size: 30px; font-weight: 300; letter-spacing: 1px; }
.variant-minimalist .job-title { font-size: 13px; color: var(--accent); text-transform: uppercase; letter-spacing: 2px; margin-bottom: 6px; }
.variant-minimalist .col-sidebar { background: #f8fafc; padding: 30px 24px; }
.variant-minimalist .col-main { padding: 30px 40px; }
.variant-minimalist .col-sidebar .section-title { color: #334155; letter-spacing: 2px; font-size: 11px; }
.variant-minimalist .col-main .section-title { color: var(--accent); border-bottom: 1px solid #e2e8f0; }
`,
	model.TemplateCreativeSidebar: `
.variant-creative-sidebar .columns { display: grid; grid-template-columns: 240px 1fr; min-height: 297mm; }
.variant-creative-sidebar .header { padding: 35px 40px 0 280px; }
.variant-creative-sidebar .name { font-size: 36px; font-weight: 800; line-height: 1; }
.variant-creative-sidebar .job-title { font-size: 18px; color: var(--accent); font-weight: 700; text-transform: uppercase; letter-spacing: 1px; }
.variant-creative-sidebar .col-sidebar { background: #1e293b; color: white; padding: 30px 20px; }
.variant-creative-sidebar .col-sidebar .section-title { color: var(--accent); border-bottom: 1px solid rgba(255,255,255,0.1); }
.variant-creative-sidebar .col-sidebar .item-detail { color: #cbd5e1; }
.variant-creative-sidebar .col-sidebar .bar { background: rgba(255,255,255,0.1); }
.variant-creative-sidebar .col-main { padding: 30px 40px; }
.variant-creative-sidebar .col-main .section-title { border-left: 4px solid var(--accent); padding-left: 12px; }
`,
}

const letterCSS = `
.cover-letter { padding: 50px 60px; }
.cl-header { display: flex; justify-content: space-between; align-items: center; border-bottom: 2px solid var(--accent); padding-bottom: 30px; margin-bottom: 40px; }
.cl-user h1 { font-size: 32px; font-weight: 800; color: var(--accent); margin-bottom: 5px; }
.cl-user p { font-size: 16px; font-weight: 600; color: #64748b; text-transform: uppercase; letter-spacing: 1px; }
.cl-contact { font-size: 11px; color: #94a3b8; margin-top: 5px; line-height: 1.6; }
.cl-photo { width: 70px; height: 70px; border-radius: 50%; border: 3px solid var(--accent); overflow: hidden; }
.cl-photo img { width: 100%; height: 100%; object-fit: cover; }
.cl-body { max-width: 800px; margin: 0 auto; line-height: 1.7; color: #334155; }
.cl-date { margin-bottom: 25px; font-weight: 600; font-size: 13px; }
.cl-recipient { margin-bottom: 35px; font-size: 13px; }
.cl-text { font-size: 13px; white-space: pre-wrap; }
.cl-main { margin: 20px 0; }
.cl-signature { margin-top: 30px; }
`

func stylesheet(l *Layout) template.CSS {
	root := fmt.Sprintf(":root { --accent: %s; --header-font: %s; --body-font: %s; }\n",
		l.Style.AccentColor, l.Style.HeaderFont, l.Style.BodyFont)
	if l.Kind == KindCoverLetter {
		return template.CSS(root + baseCSS + letterCSS)
	}
	return template.CSS(root + baseCSS + variantCSS[l.Variant])
}
