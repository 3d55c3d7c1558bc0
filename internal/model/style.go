package model

import "fmt"

// LearningStyle is one of the four VARK categories. The set is closed:
// no other value is valid anywhere in the system.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleReading     LearningStyle = "reading"
	StyleKinesthetic LearningStyle = "kinesthetic"
)

// StylePriority lists all styles in tie-break order: when two styles share
// the maximum tally, the one appearing first here wins.
var StylePriority = [4]LearningStyle{
	StyleVisual,
	StyleAuditory,
	StyleReading,
	StyleKinesthetic,
}

// ParseLearningStyle validates a raw string against the closed style set.
func ParseLearningStyle(s string) (LearningStyle, error) {
	switch LearningStyle(s) {
	case StyleVisual, StyleAuditory, StyleReading, StyleKinesthetic:
		return LearningStyle(s), nil
	}
	return "", fmt.Errorf("unknown learning style %q", s)
}

// IsValid reports whether the style is one of the four VARK categories.
func (s LearningStyle) IsValid() bool {
	switch s {
	case StyleVisual, StyleAuditory, StyleReading, StyleKinesthetic:
		return true
	}
	return false
}

// StyleProfile carries the presentation metadata for one learning style.
type StyleProfile struct {
	Style       LearningStyle `json:"style"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Tips        []string      `json:"tips"`
}

// Label returns the display name for the style.
func (s LearningStyle) Label() string {
	switch s {
	case StyleVisual:
		return "Visual"
	case StyleAuditory:
		return "Auditivo"
	case StyleReading:
		return "Leitura/Escrita"
	case StyleKinesthetic:
		return "Cinestésico"
	}
	return string(s)
}

// Profile returns the presentation metadata for the style. The switch is
// exhaustive over the closed enum; unknown values fall back to visual.
func (s LearningStyle) Profile() StyleProfile {
	switch s {
	case StyleAuditory:
		return StyleProfile{
			Style:       s,
			Label:       s.Label(),
			Description: "Você aprende melhor ouvindo explicações, conversas e discussões.",
			Tips: []string{
				"Grave áudios das suas anotações",
				"Participe de discussões em grupo",
				"Ouça podcasts educativos",
				"Explique o conteúdo em voz alta",
			},
		}
	case StyleReading:
		return StyleProfile{
			Style:       s,
			Label:       s.Label(),
			Description: "Você aprende melhor lendo e escrevendo textos.",
			Tips: []string{
				"Faça resumos e anotações detalhadas",
				"Leia livros e artigos sobre o tema",
				"Reescreva informações com suas palavras",
				"Crie listas e glossários",
			},
		}
	case StyleKinesthetic:
		return StyleProfile{
			Style:       s,
			Label:       s.Label(),
			Description: "Você aprende melhor através da prática e experiências concretas.",
			Tips: []string{
				"Faça experimentos práticos",
				"Use simulações e jogos educativos",
				"Estude em diferentes ambientes",
				"Associe movimentos ao aprendizado",
			},
		}
	default:
		return StyleProfile{
			Style:       StyleVisual,
			Label:       StyleVisual.Label(),
			Description: "Você aprende melhor através de imagens, gráficos, diagramas e demonstrações visuais.",
			Tips: []string{
				"Use mapas mentais e esquemas coloridos",
				"Assista vídeos educativos",
				"Destaque informações importantes com cores",
				"Use diagramas e infográficos para estudar",
			},
		}
	}
}
