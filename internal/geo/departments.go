// Package geo holds the service-area directory: French departments and the
// cities the network covers. The static city landing pages are generated
// from this data.
package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Department groups the covered cities of one French department.
type Department struct {
	Key    string   `json:"key"`
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Label  string   `json:"department"`
	Cities []string `json:"cities"`
}

// City is one covered city with its department attribution.
type City struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Department    string `json:"department"`
	DepartmentID  string `json:"departmentId"`
	DepartmentKey string `json:"departmentKey"`
}

var departments = []Department{
	{
		Key: "paris", ID: "75", Name: "Paris", Label: "Paris (75)",
		Cities: []string{
			"Paris 1", "Paris 2", "Paris 3", "Paris 4", "Paris 5", "Paris 6",
			"Paris 7", "Paris 8", "Paris 9", "Paris 10", "Paris 11", "Paris 12",
			"Paris 13", "Paris 14", "Paris 15", "Paris 16", "Paris 17", "Paris 18",
			"Paris 19", "Paris 20",
		},
	},
	{
		Key: "hauts-de-seine", ID: "92", Name: "Hauts-de-Seine", Label: "Hauts-de-Seine (92)",
		Cities: []string{
			"Boulogne-Billancourt", "Nanterre", "Courbevoie", "Colombes",
			"Asnières-sur-Seine", "Levallois-Perret", "Neuilly-sur-Seine",
			"Issy-les-Moulineaux", "Rueil-Malmaison", "Meudon", "Clamart",
			"Montrouge", "Puteaux", "Suresnes", "Gennevilliers", "Clichy",
			"Châtenay-Malabry", "Villeneuve-la-Garenne", "Malakoff",
		},
	},
	{
		Key: "val-de-marne", ID: "94", Name: "Val-de-Marne", Label: "Val-de-Marne (94)",
		Cities: []string{
			"Créteil", "Vitry-sur-Seine", "Ivry-sur-Seine", "Saint-Maur-des-Fossés",
			"Champigny-sur-Marne", "Maisons-Alfort", "Alfortville", "Villejuif",
			"Charenton-le-Pont", "Le Kremlin-Bicêtre", "Orly", "Thiais",
			"Choisy-le-Roi", "Nogent-sur-Marne", "Fontenay-sous-Bois", "Vincennes",
			"Sucy-en-Brie", "Limeil-Brévannes",
		},
	},
	{
		Key: "essonne", ID: "91", Name: "Essonne", Label: "Essonne (91)",
		Cities: []string{
			"Évry-Courcouronnes", "Massy", "Savigny-sur-Orge", "Sainte-Geneviève-des-Bois",
			"Corbeil-Essonnes", "Palaiseau", "Athis-Mons", "Viry-Châtillon",
			"Les Ulis", "Draveil", "Ris-Orangis", "Brunoy",
			"Grigny", "Gif-sur-Yvette", "Yerres",
		},
	},
	{
		Key: "seine-et-marne", ID: "77", Name: "Seine-et-Marne", Label: "Seine-et-Marne (77)",
		Cities: []string{
			"Meaux", "Chelles", "Melun", "Pontault-Combault",
			"Savigny-le-Temple", "Champs-sur-Marne", "Villeparisis", "Torcy",
			"Lagny-sur-Marne", "Bussy-Saint-Georges", "Fontainebleau", "Coulommiers",
			"Mitry-Mory", "Sénart",
		},
	},
	{
		Key: "yvelines", ID: "78", Name: "Yvelines", Label: "Yvelines (78)",
		Cities: []string{
			"Versailles", "Saint-Germain-en-Laye", "Mantes-la-Jolie", "Poissy",
			"Sartrouville", "Conflans-Sainte-Honorine", "Houilles", "Trappes",
			"Montigny-le-Bretonneux", "Rambouillet", "Le Chesnay-Rocquencourt",
			"Élancourt", "Les Mureaux",
		},
	},
	{
		Key: "val-doise", ID: "95", Name: "Val-d'Oise", Label: "Val-d'Oise (95)",
		Cities: []string{
			"Argenteuil", "Sarcelles", "Cergy", "Garges-lès-Gonesse",
			"Franconville", "Ermont", "Pontoise", "Taverny",
			"Saint-Gratien", "Sannois", "Gonesse", "Bezons",
			"Villiers-le-Bel", "Enghien-les-Bains",
		},
	},
	{
		Key: "alpes-maritimes", ID: "06", Name: "Alpes-Maritimes", Label: "Alpes-Maritimes (06)",
		Cities: []string{
			"Nice", "Cannes", "Antibes", "Grasse",
			"Cagnes-sur-Mer", "Menton", "Le Cannet", "Saint-Laurent-du-Var",
			"Mougins", "Vallauris", "Villeneuve-Loubet",
		},
	},
	{
		Key: "bouches-du-rhone", ID: "13", Name: "Bouches-du-Rhône", Label: "Bouches-du-Rhône (13)",
		Cities: []string{
			"Marseille 1", "Marseille 2", "Marseille 3", "Marseille 4",
			"Marseille 5", "Marseille 6", "Marseille 7", "Marseille 8",
			"Marseille 9", "Marseille 10", "Marseille 11", "Marseille 12",
			"Marseille 13", "Marseille 14", "Marseille 15", "Marseille 16",
			"Aix-en-Provence", "Aubagne", "Martigues", "Salon-de-Provence",
			"Vitrolles", "Marignane", "Istres", "La Ciotat",
			"Miramas", "Allauch", "Les Pennes-Mirabeau",
		},
	},
	{
		Key: "var", ID: "83", Name: "Var", Label: "Var (83)",
		Cities: []string{
			"Toulon", "Hyères", "La Seyne-sur-Mer", "Fréjus",
			"Saint-Raphaël", "Six-Fours-les-Plages", "Brignoles", "Draguignan",
			"La Garde", "La Valette-du-Var",
		},
	},
	{
		Key: "vaucluse", ID: "84", Name: "Vaucluse", Label: "Vaucluse (84)",
		Cities: []string{
			"Avignon", "Orange", "Carpentras", "Cavaillon",
			"Le Pontet", "Sorgues", "L'Isle-sur-la-Sorgue", "Apt",
			"Bollène", "Pertuis", "Monteux", "Vedène",
			"Morières-lès-Avignon", "Le Thor", "Sarrians", "Châteaurenard",
		},
	},
}

// Departments returns all departments in display order.
func Departments() []Department {
	return departments
}

// DepartmentByKey looks up a department by its URL key.
func DepartmentByKey(key string) (Department, bool) {
	for _, d := range departments {
		if d.Key == key {
			return d, true
		}
	}
	return Department{}, false
}

// DepartmentByID looks up a department by its INSEE code.
func DepartmentByID(id string) (Department, bool) {
	for _, d := range departments {
		if d.ID == id {
			return d, true
		}
	}
	return Department{}, false
}

// AllCities flattens every covered city with its department attribution
// and URL slug.
func AllCities() []City {
	var cities []City
	for _, d := range departments {
		for _, name := range d.Cities {
			cities = append(cities, City{
				Name:          name,
				Slug:          Slugify(name),
				Department:    d.Label,
				DepartmentID:  d.ID,
				DepartmentKey: d.Key,
			})
		}
	}
	return cities
}

// CityBySlug finds a covered city by its URL slug.
func CityBySlug(slug string) (City, bool) {
	for _, c := range AllCities() {
		if c.Slug == slug {
			return c, true
		}
	}
	return City{}, false
}

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a city name into its URL slug: lower-cased, diacritics
// stripped, whitespace collapsed to hyphens, everything else dropped.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	ascii, _, err := transform.String(stripDiacritics, lower)
	if err != nil {
		ascii = lower
	}
	ascii = strings.Join(strings.Fields(ascii), "-")

	var b strings.Builder
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
