package evaluation

import (
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// IncompleteDomainRecommendation is returned for a domain without any valid answer.
const IncompleteDomainRecommendation = "Aucune réponse pour ce domaine — évaluation incomplète"

// levelRecommendations depends on the level only, never on which items were weak.
func levelRecommendations(level domain.Level) []string {
	switch level {
	case domain.EXCELLENT:
		return []string{
			"Continuer les activités de stimulation actuelles",
			"Proposer de nouveaux défis adaptés à son âge",
		}
	case domain.NORMAL:
		return []string{
			"Maintenir la routine de stimulation actuelle",
			"Observer les progrès lors des prochaines étapes clés",
		}
	case domain.DELAYED:
		return []string{
			"Intensifier les activités de stimulation dans ce domaine",
			"Augmenter la fréquence de surveillance du développement",
			"Réévaluer dans 3 mois",
		}
	default:
		return []string{
			"Consulter un professionnel pour une évaluation spécialisée",
			"Mettre en place une intervention précoce ciblée",
		}
	}
}

// guidance holds the global recommendations and next steps of one guidance band.
type guidance struct {
	recommendations []string
	nextSteps       []string
}

func guidanceFor(band domain.GuidanceBand) guidance {
	switch band {
	case domain.GuidanceFullEvaluation:
		return guidance{
			recommendations: []string{"Évaluation pédiatrique complète recommandée"},
			nextSteps: []string{
				"Consultation pédiatrique dans les 2 semaines",
				"Apporter ce rapport lors de la consultation",
			},
		}
	case domain.GuidanceReinforcedMonitoring:
		return guidance{
			recommendations: []string{"Surveillance développementale renforcée"},
			nextSteps: []string{
				"Suivi pédiatrique dans le mois",
				"Refaire l'évaluation dans 3 mois",
			},
		}
	default:
		return guidance{
			recommendations: []string{"Développement dans les normes attendues pour l'âge"},
			nextSteps: []string{
				"Contrôle pédiatrique de routine",
				"Refaire l'évaluation à la prochaine étape clé",
			},
		}
	}
}
