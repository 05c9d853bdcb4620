package catalog

import "github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"

// DefaultProducts returns the built-in catalog. It is the fallback whenever
// no persisted product override exists or the persisted payload fails to
// decode.
func DefaultProducts() []Product {
	return []Product{
		{
			ID: "AJ-001",
			Name: i18n.Text{
				i18n.ES: "Alimentador de Jeringuilla",
				i18n.PT: "Alimentador de Seringa",
			},
			Tagline: i18n.Text{
				i18n.ES: "Innovación Social Premiada",
				i18n.PT: "Inovação Social Premiada",
			},
			Description: i18n.Text{
				i18n.ES: "Transforma el esfuerzo manual repetitivo en un suave movimiento de giro, eliminando el estrés articular y garantizando la seguridad en el proceso de alimentación por PEG.",
				i18n.PT: "Transforma o esforço manual repetitivo num movimento de rotação suave, eliminando o stress articular e garantindo a segurança no processo de alimentación.",
			},
			BasePrice: 45.00,
			Images: []string{
				"https://i.postimg.cc/9F36ZWZH/Imagen1.jpg",
				"https://i.postimg.cc/j28JV8z5/Gemini-Generated-Image-rcchjyrcchjyrcch.png",
				"https://i.postimg.cc/ydjHn2H7/1620394441231-(1).jpg",
			},
			Unit: i18n.Text{
				i18n.ES: "unidades",
				i18n.PT: "unidades",
			},
			Specs: []Spec{
				{
					Label: i18n.Text{i18n.ES: "Origen", i18n.PT: "Origem"},
					Value: i18n.Text{i18n.ES: "ASPACE Salamanca", i18n.PT: "ASPACE Salamanca"},
				},
				{
					Label: i18n.Text{i18n.ES: "Dimensiones", i18n.PT: "Dimensões"},
					Value: i18n.Text{i18n.ES: "20,5 cm x 7 cm x 7 cm", i18n.PT: "20,5 cm x 7 cm x 7 cm"},
				},
				{
					Label: i18n.Text{i18n.ES: "Peso", i18n.PT: "Peso"},
					Value: i18n.Text{i18n.ES: "150 gramos", i18n.PT: "150 gramas"},
				},
				{
					Label: i18n.Text{i18n.ES: "Fabricación", i18n.PT: "Fabricação"},
					Value: i18n.Text{i18n.ES: "Impresión 3D de alta funcionalidad", i18n.PT: "Impressão 3D de alta funcionalidade"},
				},
			},
			Maintenance: map[i18n.Language][]string{
				i18n.ES: {
					"Lavar siempre a mano con agua tibia y jabón neutro.",
					"Nunca introducir en lavavajillas o esterilizadores.",
					"No exponer a temperaturas superiores a 50ºC.",
				},
				i18n.PT: {
					"Lavar sempre à mão com água morna e sabão neutro.",
					"Nunca colocar na máquina de lavar loiça.",
					"Não expor a temperaturas superiores a 50ºC.",
				},
			},
		},
	}
}
