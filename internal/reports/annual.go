package reports

import "github.com/alnah/go-pdfreport"

var annual = Report{
	Name:        "annual",
	FileName:    "rapport_exemple.pdf",
	Description: "Rapport annuel 2024 : chiffres clés, analyse et perspectives",
	DoneLabel:   "Rapport PDF créé",
	build:       buildAnnual,
}

const (
	annualIntro = `Ce rapport présente une analyse complète des performances réalisées au cours de l'année 2024.
Les données collectées révèlent des tendances positives et des opportunités d'amélioration
identifiées à travers différents secteurs d'activité.`

	annualAnalysis = `L'année 2024 marque une étape importante dans notre développement avec une croissance
exceptionnelle de +45.9% du chiffre d'affaires. Cette performance s'explique par :`

	annualKeyPoint = `**Point Clé :** La satisfaction client atteint 92% en 2024, dépassant largement
l'objectif fixé à 88%. Cette performance traduit la qualité des améliorations apportées au service client.`

	annualOutlook = `Les résultats de 2024 établissent une base solide pour la poursuite de notre
développement. Les objectifs 2025 visent une croissance maintenue de 30% avec
une focalisation particulière sur l'innovation produit et l'expansion européenne.`
)

var annualPoints = []string{
	"• Le lancement réussi de trois nouveaux produits innovants",
	"• L'expansion sur de nouveaux marchés géographiques",
	"• L'amélioration continue de la satisfaction client (+5 points)",
	"• L'optimisation des processus internes permettant +52% de projets livrés",
}

var annualFigures = [][]string{
	{"Métrique", "2023", "2024", "Évolution"},
	{"Revenus (k€)", "850", "1 240", "+45.9%"},
	{"Clients", "45", "68", "+51.1%"},
	{"Satisfaction", "87%", "92%", "+5 pts"},
	{"Projets livrés", "23", "35", "+52.2%"},
}

func buildAnnual(e env) *pdfreport.Document {
	title := titleStyle(28, 30)
	subtitle := subtitleStyle(50)
	heading := sectionStyle(16, 20, 10)
	body := bodyStyle(10, 14, 10)

	date := normal()
	date.Name = "DateStyle"
	date.FontSize = 11
	date.TextColor = pdfreport.Grey
	date.Alignment = pdfreport.AlignCenter

	doc := pdfreport.NewDocument(pdfreport.DefaultPageSettings())
	doc.Title = "Rapport annuel 2024"
	doc.Subject = "Performance & Analyses Stratégiques"

	// Title page
	doc.Spacer(80).
		Heading("RAPPORT ANNUEL 2024", title).
		Paragraph("Performance & Analyses Stratégiques", subtitle).
		Spacer(30).
		Paragraph("Généré le "+e.date(), date).
		Spacer(100).
		Table(decoration(15 * pdfreport.Cm)).
		Spacer(50).
		PageBreak()

	doc.Subheading("1. Introduction", heading).
		Paragraph(annualIntro, body).
		Spacer(20)

	doc.Subheading("2. Chiffres Clés", heading).
		Table(keyFigures()).
		Spacer(30)

	doc.Subheading("3. Analyse des Performances", heading).
		Paragraph(annualAnalysis, body).
		Spacer(10)
	for _, p := range annualPoints {
		doc.Paragraph(p, body)
	}
	doc.Spacer(20).
		Table(callout(annualKeyPoint, body, pdfreport.Hex("#FFF9E6"), pdfreport.Hex("#F39C12"))).
		Spacer(30)

	doc.Subheading("4. Perspectives 2025", heading).
		Paragraph(annualOutlook, body)

	return doc
}

func keyFigures() *pdfreport.Table {
	t := pdfreport.NewTable(annualFigures, 4*pdfreport.Cm, 3*pdfreport.Cm, 3*pdfreport.Cm, 3*pdfreport.Cm)
	at := pdfreport.At
	t.SetStyle(
		// header
		pdfreport.Background(at(0, 0), at(-1, 0), primary),
		pdfreport.TextColor(at(0, 0), at(-1, 0), pdfreport.White),
		pdfreport.FontName(at(0, 0), at(-1, 0), pdfreport.FontHelveticaBold),
		pdfreport.FontSize(at(0, 0), at(-1, 0), 10),
		pdfreport.Align(at(0, 0), at(-1, 0), pdfreport.AlignCenter),
		pdfreport.BottomPadding(at(0, 0), at(-1, 0), 12),

		// body
		pdfreport.Background(at(0, 1), at(-1, -1), pdfreport.White),
		pdfreport.TextColor(at(0, 1), at(-1, -1), pdfreport.Black),
		pdfreport.FontName(at(0, 1), at(0, -1), pdfreport.FontHelveticaBold),
		pdfreport.FontSize(at(0, 1), at(-1, -1), 9),
		pdfreport.Align(at(1, 1), at(-1, -1), pdfreport.AlignCenter),
		pdfreport.BottomPadding(at(0, 1), at(-1, -1), 8),
		pdfreport.TopPadding(at(0, 1), at(-1, -1), 8),
	)
	t.SetStyle(stripes(2, 4)...)
	return t.SetStyle(
		// evolution column
		pdfreport.TextColor(at(3, 1), at(3, -1), pdfreport.Hex("#27AE60")),
		pdfreport.FontName(at(3, 1), at(3, -1), pdfreport.FontHelveticaBold),

		// borders
		pdfreport.Grid(at(0, 0), at(-1, -1), 0.5, pdfreport.Grey),
		pdfreport.Box(at(0, 0), at(-1, -1), 1, primary),
	)
}
