package reports

import "github.com/alnah/go-pdfreport"

var installation = Report{
	Name:        "installation",
	FileName:    "rapport_installation_morpheus.pdf",
	Description: "Rapport d'installation de l'agent Morpheus : outils, versions et configuration",
	DoneLabel:   "Rapport créé",
	build:       buildInstallation,
}

// section is one titled inventory table of the installation report.
type section struct {
	title     string
	intro     string // optional paragraph between title and table
	rows      [][]string
	colWidths []float64
	header    pdfreport.Color
	stripes   []int
	// smallBody keeps a 9pt header and sets 8pt on body rows only.
	// Otherwise the whole table is 8pt.
	smallBody bool
	after     pdfreport.Block // Spacer or PageBreak
}

const installationConclusion = `**Status Global :** L'installation de Morpheus est complète et fonctionnelle.
L'agent dispose désormais de tous les outils nécessaires pour opérer de manière autonome :
gestion système, scraping web, développement, génération de documents, et conteneurisation.
**Espace disque utilisé :** ~+650 Mo | **Prochaines étapes :** Création d'agents spécialisés`

var (
	wide   = []float64{3.5 * pdfreport.Cm, 2.5 * pdfreport.Cm, 8 * pdfreport.Cm}
	spacer = &pdfreport.Spacer{Height: 15}
)

var installationSections = []section{
	{
		title: "1. Outils Système & Réseau",
		rows: [][]string{
			{"Outil", "Version", "Usage"},
			{"htop", "3.3.0", "Moniteur système interactif"},
			{"btop", "1.3.0", "Moniteur système graphique"},
			{"fd (fdfind)", "9.0.0", "Recherche fichier ultra-rapide"},
			{"ripgrep", "14.1.0", "Grep moderne performant"},
			{"fzf", "0.44.1", "Fuzzy finder interactif"},
			{"jq", "1.7.1", "Parser JSON en CLI"},
			{"yq", "3.1.0", "Parser YAML en CLI"},
			{"tree", "2.1.1", "Arborescence répertoires"},
			{"ncdu", "1.19", "Analyseur disque interactif"},
			{"rclone", "1.60.1", "Synchronisation cloud"},
			{"nmap", "7.94", "Scan réseau sécurité"},
			{"net-tools", "2.10", "Outils réseau (ifconfig, netstat)"},
		},
		colWidths: wide,
		header:    primary,
		stripes:   []int{2, 4, 6, 8, 10},
		smallBody: true,
		after:     spacer,
	},
	{
		title: "2. Conteneurisation Docker",
		rows: [][]string{
			{"Composant", "Version", "Description"},
			{"Docker CE", "29.2.1", "Moteur de conteneurs"},
			{"Docker Compose", "v5.0.2", "Orchestration multi-conteneurs"},
			{"Buildx", "0.31.1", "Build multi-plateforme"},
			{"Containerd", "2.2.1", "Runtime de conteneurs"},
		},
		colWidths: wide,
		header:    secondary,
		smallBody: true,
		after:     spacer,
	},
	{
		title: "3. Environnements Python Virtualisés",
		intro: "Trois environnements virtuels dédiés ont été créés pour isoler les dépendances :",
		rows: [][]string{
			{"Environnement", "Chemin", "Usage principal"},
			{"scraping", "~/.venvs/scraping", "Navigation web, Playwright, BeautifulSoup"},
			{"documents", "~/.venvs/documents", "Génération PDF, Word, Excel, PowerPoint"},
			{"system", "Python 3.12.3 natif", "Outils système et scripts généraux"},
		},
		colWidths: []float64{3 * pdfreport.Cm, 6 * pdfreport.Cm, 5 * pdfreport.Cm},
		header:    primary,
		stripes:   []int{2},
		after:     &pdfreport.PageBreak{},
	},
	{
		title: "4. Arsenal de Scraping Web",
		rows: [][]string{
			{"Outil", "Version", "Fonction"},
			{"Playwright", "1.58.0", "Navigateur automatisé (Chrome, Firefox, WebKit)"},
			{"yt-dlp", "2024.04.09", "Téléchargement vidéos (YouTube, 1000+ sites)"},
			{"gallery-dl", "1.26.9", "Téléchargement images (Instagram, Reddit...)"},
			{"instaloader", "4.10.3", "Scraping Instagram spécifique"},
			{"requests", "2.32.5", "Requêtes HTTP synchrones"},
			{"httpx", "0.28.1", "Requêtes HTTP sync/async"},
			{"beautifulsoup4", "4.14.3", "Parsing HTML/XML"},
			{"lxml", "6.0.2", "Parsing XML/HTML haute performance"},
			{"fake-useragent", "2.2.0", "Rotation User-Agent"},
		},
		colWidths: wide,
		header:    pdfreport.Hex("#9B59B6"),
		stripes:   []int{2, 4, 6, 8},
		smallBody: true,
		after:     spacer,
	},
	{
		title: "5. Développement Web Moderne",
		rows: [][]string{
			{"Outil/Techno", "Version", "Usage"},
			{"Node.js", "v22.22.0", "Runtime JavaScript moderne"},
			{"npm", "10.9.4", "Gestionnaire de paquets"},
			{"pm2", "6.0.14", "Process manager production"},
			{"Vite", "7.3.1", "Build tool ultra-rapide"},
			{"ESLint", "10.0.0", "Linter JavaScript"},
			{"Sass", "1.97.3", "Préprocesseur CSS"},
			{"TypeScript", "5.9.3", "JavaScript typé"},
			{"ts-node", "10.9.2", "Exécution TypeScript directe"},
		},
		colWidths: wide,
		header:    pdfreport.Hex("#E67E22"),
		stripes:   []int{2, 4, 6},
		smallBody: true,
		after:     spacer,
	},
	{
		title: "6. Génération de Documents",
		rows: [][]string{
			{"Librairie", "Version", "Formats supportés"},
			{"python-docx", "1.2.0", "Microsoft Word (.docx)"},
			{"openpyxl", "3.1.5", "Microsoft Excel (.xlsx)"},
			{"python-pptx", "1.0.2", "Microsoft PowerPoint (.pptx)"},
			{"reportlab", "4.4.10", "PDF avancé (vectoriel)"},
			{"fpdf2", "2.8.5", "PDF simple"},
			{"XlsxWriter", "3.2.9", "Excel avancé (graphiques)"},
			{"Pillow", "12.1.1", "Manipulation d'images"},
		},
		colWidths: wide,
		header:    pdfreport.Hex("#27AE60"),
		stripes:   []int{2, 4, 6},
		smallBody: true,
		after:     &pdfreport.PageBreak{},
	},
	{
		title: "7. Configuration Système",
		rows: [][]string{
			{"Paramètre", "Valeur", "Description"},
			{"SSH", "Actif + auto-boot", "Accès distant sécurisé"},
			{"Docker", "Service auto-boot", "Démarrage automatique des containers"},
			{"OpenClaw", "Service systemd", "Agent IA démarrage auto"},
			{"Sudo sans pass", "Activé", "tomwaro ALL=(ALL) NOPASSWD"},
			{"Veille", "Désactivée", "Machine toujours allumée"},
			{"Headless", "Actif", "Fonctionnement sans écran/clavier"},
		},
		colWidths: []float64{4 * pdfreport.Cm, 4 * pdfreport.Cm, 6 * pdfreport.Cm},
		header:    accent,
		stripes:   []int{2, 4},
		smallBody: true,
		after:     &pdfreport.Spacer{Height: 20},
	},
}

var installationSummary = [][]string{
	{"Catégorie", "Nombre d'outils", "Statut"},
	{"Outils Système", "12+", "✅ Opérationnel"},
	{"Docker & Conteneurs", "4", "✅ Service actif"},
	{"Environnements Python", "3 venv", "✅ Isolés"},
	{"Outils Scraping", "9", "✅ Configurés"},
	{"Dev Web", "8", "✅ Installés"},
	{"Génération Documents", "7", "✅ Fonctionnels"},
	{"Configuration", "6", "✅ Optimisée"},
}

func buildInstallation(e env) *pdfreport.Document {
	heading := sectionStyle(14, 15, 8)
	body := bodyStyle(9, 12, 8)

	doc := pdfreport.NewDocument(pdfreport.DefaultPageSettings())
	doc.Title = "Rapport d'installation"
	doc.Subject = "Configuration complète de Morpheus - Agent IA Autonome"

	// Title page
	doc.Spacer(60).
		Heading("RAPPORT D'INSTALLATION", titleStyle(26, 20)).
		Paragraph("Configuration complète de Morpheus - Agent IA Autonome", subtitleStyle(40)).
		Spacer(20).
		Table(systemInfo(e.date())).
		Spacer(40).
		Table(decoration(14 * pdfreport.Cm)).
		PageBreak()

	for _, s := range installationSections {
		doc.Subheading(s.title, heading)
		if s.intro != "" {
			doc.Paragraph(s.intro, body).Spacer(5)
		}
		doc.Table(s.table()).Add(copyBlock(s.after))
	}

	doc.Subheading("Résumé de l'Installation", heading).
		Table(summaryTable()).
		Spacer(30).
		Table(callout(installationConclusion, body, pdfreport.Hex("#E8F8F5"), pdfreport.Hex("#1ABC9C")))

	return doc
}

// copyBlock gives each document its own spacer or page break value.
func copyBlock(b pdfreport.Block) pdfreport.Block {
	switch v := b.(type) {
	case *pdfreport.Spacer:
		c := *v
		return &c
	case *pdfreport.PageBreak:
		return &pdfreport.PageBreak{}
	}
	return b
}

func systemInfo(date string) *pdfreport.Table {
	t := pdfreport.NewTable([][]string{
		{"Machine", "HP ProDesk 400 G4 DM"},
		{"OS", "Ubuntu 24.04.4 LTS"},
		{"Date", date},
		{"Agent", "Morpheus v1.0"},
	}, 4*pdfreport.Cm, 10*pdfreport.Cm)
	at := pdfreport.At
	return t.SetStyle(
		pdfreport.Background(at(0, 0), at(0, -1), lightGrey),
		pdfreport.FontName(at(0, 0), at(0, -1), pdfreport.FontHelveticaBold),
		pdfreport.FontSize(at(0, 0), at(-1, -1), 10),
		pdfreport.Grid(at(0, 0), at(-1, -1), 0.5, pdfreport.Grey),
		pdfreport.VAlign(at(0, 0), at(-1, -1), pdfreport.VAlignMiddle),
		pdfreport.LeftPadding(at(0, 0), at(-1, -1), 10),
		pdfreport.BottomPadding(at(0, 0), at(-1, -1), 8),
	)
}

// table builds the section's inventory table: coloured header, white body,
// grey stripes, thin grid and 8pt body text.
func (s section) table() *pdfreport.Table {
	at := pdfreport.At
	t := pdfreport.NewTable(s.rows, append([]float64(nil), s.colWidths...)...)
	t.SetStyle(
		pdfreport.Background(at(0, 0), at(-1, 0), s.header),
		pdfreport.TextColor(at(0, 0), at(-1, 0), pdfreport.White),
		pdfreport.FontName(at(0, 0), at(-1, 0), pdfreport.FontHelveticaBold),
	)
	if s.smallBody {
		t.SetStyle(pdfreport.FontSize(at(0, 0), at(-1, 0), 9))
	}
	t.SetStyle(pdfreport.Background(at(0, 1), at(-1, -1), pdfreport.White))
	t.SetStyle(stripes(s.stripes...)...)
	t.SetStyle(pdfreport.Grid(at(0, 0), at(-1, -1), 0.5, pdfreport.Grey))
	if s.smallBody {
		t.SetStyle(pdfreport.FontSize(at(0, 1), at(-1, -1), 8))
	} else {
		t.SetStyle(pdfreport.FontSize(at(0, 0), at(-1, -1), 8))
	}
	return t.SetStyle(pdfreport.VAlign(at(0, 0), at(-1, -1), pdfreport.VAlignMiddle))
}

func summaryTable() *pdfreport.Table {
	at := pdfreport.At
	t := pdfreport.NewTable(installationSummary, 5*pdfreport.Cm, 3*pdfreport.Cm, 6*pdfreport.Cm)
	t.SetStyle(
		pdfreport.Background(at(0, 0), at(-1, 0), primary),
		pdfreport.TextColor(at(0, 0), at(-1, 0), pdfreport.White),
		pdfreport.FontName(at(0, 0), at(-1, 0), pdfreport.FontHelveticaBold),
		pdfreport.Background(at(0, 1), at(-1, -1), pdfreport.White),
	)
	t.SetStyle(stripes(2, 4, 6)...)
	return t.SetStyle(
		pdfreport.Grid(at(0, 0), at(-1, -1), 0.5, pdfreport.Grey),
		pdfreport.FontName(at(0, 1), at(0, -1), pdfreport.FontHelveticaBold),
		pdfreport.FontSize(at(0, 0), at(-1, -1), 9),
		pdfreport.VAlign(at(0, 0), at(-1, -1), pdfreport.VAlignMiddle),
	)
}
