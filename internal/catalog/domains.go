package catalog

import (
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

func bundledDomains() []domain.DomainConfig {
	return []domain.DomainConfig{
		{
			Domain:      domain.COMMUNICATION,
			Name:        "Communication et langage",
			Description: "Compréhension, expression orale et communication non verbale",
			Icon:        "chat",
			CriticalMilestones: []string{
				"Babille avec des syllabes répétées vers 9 mois",
				"Dit ses premiers mots vers 12 mois",
				"Associe deux mots vers 24 mois",
				"Fait des phrases de 3 mots ou plus vers 36 mois",
			},
			RedFlags: []string{
				"Aucun babillage à 12 mois",
				"Aucun mot isolé à 16 mois",
				"Aucune phrase de deux mots à 24 mois",
				"Perte de langage ou de compétences sociales à tout âge",
			},
			InterventionGuidelines: []string{
				"Lire des livres illustrés chaque jour en nommant les images",
				"Commenter les activités quotidiennes avec des phrases courtes",
				"Consulter un orthophoniste en cas de retard persistant",
			},
		},
		{
			Domain:      domain.GROSS_MOTOR,
			Name:        "Motricité globale",
			Description: "Contrôle postural, déplacements et coordination des grands mouvements",
			Icon:        "run",
			CriticalMilestones: []string{
				"Tient sa tête vers 4 mois",
				"Tient assis sans appui vers 9 mois",
				"Marche seul vers 18 mois",
				"Monte les escaliers vers 30 mois",
			},
			RedFlags: []string{
				"Pas de tenue de tête à 4 mois",
				"Pas de station assise à 9 mois",
				"Pas de marche autonome à 18 mois",
				"Asymétrie marquée des mouvements",
			},
			InterventionGuidelines: []string{
				"Proposer du temps sur le ventre plusieurs fois par jour",
				"Aménager un espace sécurisé pour explorer librement",
				"Orienter vers un kinésithérapeute ou un psychomotricien si besoin",
			},
		},
		{
			Domain:      domain.FINE_MOTOR,
			Name:        "Motricité fine",
			Description: "Préhension, manipulation d'objets et coordination œil-main",
			Icon:        "hand",
			CriticalMilestones: []string{
				"Saisit un objet volontairement vers 6 mois",
				"Utilise la pince pouce-index vers 12 mois",
				"Empile trois cubes vers 18 mois",
				"Copie un cercle vers 36 mois",
			},
			RedFlags: []string{
				"Mains constamment fermées après 4 mois",
				"Aucune préhension volontaire à 6 mois",
				"Pas de pince fine à 15 mois",
			},
			InterventionGuidelines: []string{
				"Offrir des objets de tailles et textures variées",
				"Encourager le dessin, la pâte à modeler et les encastrements",
				"Consulter un ergothérapeute si les difficultés persistent",
			},
		},
		{
			Domain:      domain.PROBLEM_SOLVING,
			Name:        "Résolution de problèmes",
			Description: "Exploration, permanence de l'objet et stratégies pour atteindre un but",
			Icon:        "puzzle",
			CriticalMilestones: []string{
				"Cherche un objet caché vers 9 mois",
				"Utilise un objet comme outil vers 18 mois",
				"Réalise un encastrement simple vers 24 mois",
			},
			RedFlags: []string{
				"Aucun intérêt pour les objets à 6 mois",
				"Ne cherche pas un objet caché à 12 mois",
			},
			InterventionGuidelines: []string{
				"Jouer à cacher et retrouver des objets",
				"Proposer des jouets de cause à effet adaptés à l'âge",
			},
		},
		{
			Domain:      domain.PERSONAL_SOCIAL,
			Name:        "Personnel-social",
			Description: "Relations aux autres, attention conjointe et jeu social",
			Icon:        "people",
			CriticalMilestones: []string{
				"Sourit en réponse vers 2 mois",
				"Pointe pour partager un intérêt vers 12 mois",
				"Joue à faire semblant vers 24 mois",
				"Joue avec d'autres enfants vers 36 mois",
			},
			RedFlags: []string{
				"Pas de sourire social à 3 mois",
				"Pas de pointage ni de regard partagé à 12 mois",
				"Ne répond pas à son prénom à 12 mois",
			},
			InterventionGuidelines: []string{
				"Multiplier les jeux de face-à-face et d'imitation",
				"Favoriser les échanges avec d'autres enfants",
				"Envisager un dépistage des troubles du neurodéveloppement si plusieurs signes sont présents",
			},
		},
		{
			Domain:      domain.ADAPTIVE_BEHAVIOR,
			Name:        "Comportement adaptatif",
			Description: "Autonomie dans les gestes du quotidien : repas, habillage, propreté",
			Icon:        "spoon",
			CriticalMilestones: []string{
				"Mange seul avec les doigts vers 9 mois",
				"Boit au verre vers 15 mois",
				"Utilise une cuillère vers 18 mois",
				"Participe à l'habillage vers 30 mois",
			},
			RedFlags: []string{
				"Aucune participation au repas à 18 mois",
				"Régression de l'autonomie acquise",
			},
			InterventionGuidelines: []string{
				"Laisser l'enfant essayer seul avant d'aider",
				"Instaurer des routines prévisibles pour les repas et l'habillage",
			},
		},
		{
			Domain:      domain.COGNITIVE,
			Name:        "Développement cognitif",
			Description: "Attention, mémoire, catégorisation et premiers concepts",
			Icon:        "brain",
			CriticalMilestones: []string{
				"Suit un objet des yeux vers 2 mois",
				"Reconnaît les personnes familières vers 6 mois",
				"Désigne des images nommées vers 18 mois",
				"Trie des objets par couleur ou forme vers 36 mois",
			},
			RedFlags: []string{
				"Ne suit pas du regard à 3 mois",
				"Aucun intérêt pour l'environnement à 9 mois",
			},
			InterventionGuidelines: []string{
				"Nommer et classer les objets du quotidien",
				"Limiter les écrans et privilégier le jeu interactif",
			},
		},
		{
			Domain:      domain.EMOTIONAL_REGULATION,
			Name:        "Régulation émotionnelle",
			Description: "Apaisement, gestion de la frustration et expression des émotions",
			Icon:        "heart",
			CriticalMilestones: []string{
				"Se calme lorsqu'on le console vers 3 mois",
				"Se console avec un objet familier vers 12 mois",
				"Tolère de courtes séparations vers 24 mois",
				"Nomme quelques émotions vers 48 mois",
			},
			RedFlags: []string{
				"Pleurs inconsolables persistants après 4 mois",
				"Colères très fréquentes et prolongées après 4 ans",
			},
			InterventionGuidelines: []string{
				"Mettre des mots sur les émotions de l'enfant",
				"Maintenir des routines de sommeil et d'apaisement stables",
				"Solliciter un psychologue de l'enfant si les difficultés s'installent",
			},
		},
	}
}
