package catalog

import (
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// Provenance labels carried on each question for display.
const (
	sourceASQ3     = "ASQ-3"
	sourceDenver   = "Denver II"
	sourceCDC      = "CDC Milestones 2022"
	sourceMCHAT    = "M-CHAT-R/F"
	sourceBayley   = "Bayley-III"
	sourceVineland = "Vineland-3"
	sourceITSEA    = "ITSEA"

	evidenceHigh     = "A"
	evidenceModerate = "B"
	evidenceExpert   = "C"
)

func percentile(v int) *int { return &v }

// milestoneOptions is the five-step acquisition ladder used by most items.
func milestoneOptions(notYet, acquired string) []domain.EvaluationOption {
	return []domain.EvaluationOption{
		{Value: "not_yet", Label: "Pas encore", Score: 0, ClinicalInterpretation: notYet, Percentile: percentile(5)},
		{Value: "emerging", Label: "Commence à apparaître", Score: 1, ClinicalInterpretation: "Compétence émergente, à surveiller", Percentile: percentile(15)},
		{Value: "sometimes", Label: "Parfois", Score: 2, ClinicalInterpretation: "Acquisition en cours", Percentile: percentile(35)},
		{Value: "often", Label: "Souvent", Score: 3, ClinicalInterpretation: "Compétence presque acquise", Percentile: percentile(65)},
		{Value: "always", Label: "Oui, régulièrement", Score: 4, ClinicalInterpretation: acquired, Percentile: percentile(90)},
	}
}

// observedOptions is the three-step ladder used for items observed in a single setting.
func observedOptions(absent, present string) []domain.EvaluationOption {
	return []domain.EvaluationOption{
		{Value: "no", Label: "Non", Score: 0, ClinicalInterpretation: absent},
		{Value: "with_help", Label: "Avec aide", Score: 2, ClinicalInterpretation: "Réalisé avec soutien de l'adulte"},
		{Value: "yes", Label: "Oui", Score: 4, ClinicalInterpretation: present},
	}
}

func bundledQuestions() []domain.EvaluationQuestion {
	var out []domain.EvaluationQuestion
	out = append(out, communicationQuestions()...)
	out = append(out, grossMotorQuestions()...)
	out = append(out, fineMotorQuestions()...)
	out = append(out, problemSolvingQuestions()...)
	out = append(out, personalSocialQuestions()...)
	out = append(out, adaptiveQuestions()...)
	out = append(out, cognitiveQuestions()...)
	out = append(out, emotionalQuestions()...)
	return out
}

func communicationQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "com_coos_2m", Text: "Votre enfant émet-il des vocalises (gazouillis, « areu ») quand on lui parle ?",
			Domain: domain.COMMUNICATION, Subdomain: "Expression précoce", AgeInMonths: 2, Weight: 1.5,
			Options: milestoneOptions("Absence de vocalises en réponse", "Vocalises sociales bien présentes"),
			Source:  sourceCDC, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "com_babble_9m", Text: "Votre enfant babille-t-il en répétant des syllabes (« mamama », « bababa ») ?",
			Domain: domain.COMMUNICATION, Subdomain: "Expression", AgeInMonths: 9, CriticalAge: true, Weight: 2.5,
			Options: milestoneOptions("Absence de babillage canonique : signe d'alerte", "Babillage canonique acquis"),
			Source:  sourceASQ3, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "com_name_response_12m", Text: "Votre enfant se retourne-t-il quand on l'appelle par son prénom ?",
			Domain: domain.COMMUNICATION, Subdomain: "Compréhension", AgeInMonths: 12, CriticalAge: true, Weight: 3.0,
			Options: milestoneOptions("Absence de réponse au prénom : signe d'alerte majeur", "Répond de façon fiable à son prénom"),
			Source:  sourceMCHAT, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "com_first_words_12m", Text: "Votre enfant dit-il au moins un mot avec du sens (« papa », « maman », « encore ») ?",
			Domain: domain.COMMUNICATION, Subdomain: "Expression", AgeInMonths: 12, Weight: 2.0,
			Options: milestoneOptions("Aucun mot porteur de sens", "Premiers mots acquis"),
			Source:  sourceASQ3, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "com_two_words_24m", Text: "Votre enfant associe-t-il deux mots (« encore gâteau », « papa parti ») ?",
			Domain: domain.COMMUNICATION, Subdomain: "Syntaxe", AgeInMonths: 24, CriticalAge: true, Weight: 3.0,
			Options: milestoneOptions("Pas d'association de mots à 24 mois : signe d'alerte", "Associations de deux mots fréquentes"),
			Source:  sourceASQ3, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "com_sentences_36m", Text: "Votre enfant fait-il des phrases de trois mots ou plus ?",
			Domain: domain.COMMUNICATION, Subdomain: "Syntaxe", AgeInMonths: 36, Weight: 2.0,
			Options: milestoneOptions("Langage limité à des mots isolés", "Phrases simples bien construites"),
			Source:  sourceDenver, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "com_story_48m", Text: "Votre enfant raconte-t-il un événement de sa journée de façon compréhensible ?",
			Domain: domain.COMMUNICATION, Subdomain: "Discours", AgeInMonths: 48, Weight: 1.5,
			Options: milestoneOptions("Récit impossible ou incompréhensible", "Récit cohérent et intelligible"),
			Source:  sourceCDC, EvidenceLevel: evidenceModerate,
		},
	}
}

func grossMotorQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "gm_head_control_4m", Text: "Allongé sur le ventre, votre enfant soulève-t-il et maintient-il sa tête ?",
			Domain: domain.GROSS_MOTOR, Subdomain: "Contrôle postural", AgeInMonths: 4, CriticalAge: true, Weight: 2.5,
			Options: milestoneOptions("Tenue de tête absente : signe d'alerte", "Tenue de tête stable"),
			Source:  sourceASQ3, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "gm_rolls_6m", Text: "Votre enfant se retourne-t-il du dos sur le ventre ?",
			Domain: domain.GROSS_MOTOR, Subdomain: "Déplacements", AgeInMonths: 6, Weight: 1.5,
			Options: milestoneOptions("Aucun retournement", "Retournements maîtrisés"),
			Source:  sourceDenver, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "gm_sits_9m", Text: "Votre enfant tient-il assis seul, sans appui, pendant plusieurs minutes ?",
			Domain: domain.GROSS_MOTOR, Subdomain: "Contrôle postural", AgeInMonths: 9, CriticalAge: true, Weight: 2.5,
			Options: milestoneOptions("Station assise impossible : signe d'alerte", "Station assise stable"),
			Source:  sourceASQ3, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "gm_walks_18m", Text: "Votre enfant marche-t-il seul sur plusieurs pas sans se tenir ?",
			Domain: domain.GROSS_MOTOR, Subdomain: "Déplacements", AgeInMonths: 18, CriticalAge: true, Weight: 3.0,
			Options: milestoneOptions("Marche autonome absente à 18 mois : signe d'alerte", "Marche autonome acquise"),
			Source:  sourceCDC, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "gm_kicks_ball_24m", Text: "Votre enfant donne-t-il un coup de pied dans un ballon sans tomber ?",
			Domain: domain.GROSS_MOTOR, Subdomain: "Coordination", AgeInMonths: 24, Weight: 1.5,
			Options: observedOptions("Geste non réalisé", "Coup de pied maîtrisé"),
			Source:  sourceASQ3, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "gm_stairs_30m", Text: "Votre enfant monte-t-il les escaliers en alternant les pieds, en se tenant à la rampe ?",
			Domain: domain.GROSS_MOTOR, Subdomain: "Coordination", AgeInMonths: 30, Weight: 1.0,
			Options: milestoneOptions("Ne monte pas les escaliers", "Montée alternée maîtrisée"),
			Source:  sourceDenver, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "gm_hops_48m", Text: "Votre enfant saute-t-il à cloche-pied au moins deux fois ?",
			Domain: domain.GROSS_MOTOR, Subdomain: "Équilibre", AgeInMonths: 48, Weight: 1.0,
			Options: observedOptions("Saut à cloche-pied impossible", "Saut à cloche-pied acquis"),
			Source:  sourceDenver, EvidenceLevel: evidenceModerate,
		},
	}
}

func fineMotorQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "fm_hands_open_3m", Text: "Les mains de votre enfant sont-elles le plus souvent ouvertes ?",
			Domain: domain.FINE_MOTOR, Subdomain: "Préhension", AgeInMonths: 3, Weight: 1.0,
			Options: milestoneOptions("Mains constamment fermées", "Mains ouvertes au repos"),
			Source:  sourceBayley, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "fm_reaches_6m", Text: "Votre enfant tend-il la main pour attraper un jouet et le saisit-il ?",
			Domain: domain.FINE_MOTOR, Subdomain: "Préhension", AgeInMonths: 6, CriticalAge: true, Weight: 2.5,
			Options: milestoneOptions("Aucune préhension volontaire : signe d'alerte", "Préhension volontaire acquise"),
			Source:  sourceASQ3, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "fm_pincer_12m", Text: "Votre enfant ramasse-t-il un petit objet (miette, céréale) entre le pouce et l'index ?",
			Domain: domain.FINE_MOTOR, Subdomain: "Pince fine", AgeInMonths: 12, CriticalAge: true, Weight: 2.0,
			Options: milestoneOptions("Pince fine absente", "Pince pouce-index précise"),
			Source:  sourceASQ3, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "fm_tower_18m", Text: "Votre enfant empile-t-il au moins trois cubes ?",
			Domain: domain.FINE_MOTOR, Subdomain: "Coordination œil-main", AgeInMonths: 18, Weight: 1.5,
			Options: observedOptions("N'empile pas de cubes", "Tour de trois cubes réussie"),
			Source:  sourceDenver, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "fm_scribbles_24m", Text: "Votre enfant fait-il des traits ou des gribouillages avec un crayon ?",
			Domain: domain.FINE_MOTOR, Subdomain: "Graphisme", AgeInMonths: 24, Weight: 1.5,
			Options: milestoneOptions("Ne tient pas le crayon", "Gribouillage spontané"),
			Source:  sourceASQ3, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "fm_circle_36m", Text: "Votre enfant copie-t-il un cercle après l'avoir vu dessiné ?",
			Domain: domain.FINE_MOTOR, Subdomain: "Graphisme", AgeInMonths: 36, Weight: 1.5,
			Options: observedOptions("Copie du cercle impossible", "Cercle fermé reproduit"),
			Source:  sourceDenver, EvidenceLevel: evidenceModerate,
		},
	}
}

func problemSolvingQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "ps_explores_6m", Text: "Votre enfant porte-t-il les objets à la bouche et les examine-t-il ?",
			Domain: domain.PROBLEM_SOLVING, Subdomain: "Exploration", AgeInMonths: 6, Weight: 1.0,
			Options: milestoneOptions("Aucune exploration des objets", "Exploration active des objets"),
			Source:  sourceASQ3, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "ps_hidden_object_9m", Text: "Votre enfant cherche-t-il un jouet caché sous un tissu devant lui ?",
			Domain: domain.PROBLEM_SOLVING, Subdomain: "Permanence de l'objet", AgeInMonths: 9, CriticalAge: true, Weight: 2.5,
			Options: milestoneOptions("Ne cherche pas l'objet caché", "Permanence de l'objet acquise"),
			Source:  sourceBayley, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "ps_tool_use_18m", Text: "Votre enfant utilise-t-il un objet pour en atteindre un autre (bâton, ficelle) ?",
			Domain: domain.PROBLEM_SOLVING, Subdomain: "Moyens-fins", AgeInMonths: 18, Weight: 2.0,
			Options: milestoneOptions("Aucune stratégie d'outil", "Utilise spontanément un outil"),
			Source:  sourceBayley, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "ps_shape_sorter_24m", Text: "Votre enfant place-t-il correctement des formes simples dans un encastrement ?",
			Domain: domain.PROBLEM_SOLVING, Subdomain: "Raisonnement visuo-spatial", AgeInMonths: 24, Weight: 1.5,
			Options: observedOptions("Encastrement non réussi", "Encastrement réussi seul"),
			Source:  sourceASQ3, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "ps_puzzle_36m", Text: "Votre enfant assemble-t-il un puzzle de quatre à six pièces ?",
			Domain: domain.PROBLEM_SOLVING, Subdomain: "Raisonnement visuo-spatial", AgeInMonths: 36, Weight: 1.5,
			Options: milestoneOptions("Puzzle non réalisé", "Puzzle assemblé seul"),
			Source:  sourceASQ3, EvidenceLevel: evidenceModerate,
		},
	}
}

func personalSocialQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "soc_social_smile_2m", Text: "Votre enfant vous sourit-il en réponse à votre sourire ?",
			Domain: domain.PERSONAL_SOCIAL, Subdomain: "Interaction précoce", AgeInMonths: 2, CriticalAge: true, Weight: 2.5,
			Options: milestoneOptions("Absence de sourire social : signe d'alerte", "Sourire social bien établi"),
			Source:  sourceCDC, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "soc_pointing_12m", Text: "Votre enfant pointe-t-il du doigt pour vous montrer quelque chose qui l'intéresse ?",
			Domain: domain.PERSONAL_SOCIAL, Subdomain: "Attention conjointe", AgeInMonths: 12, CriticalAge: true, Weight: 3.0,
			Options: milestoneOptions("Pointage proto-déclaratif absent : signe d'alerte majeur", "Pointage de partage fréquent"),
			Source:  sourceMCHAT, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "soc_imitation_15m", Text: "Votre enfant imite-t-il vos gestes (au revoir, bravo, balayer) ?",
			Domain: domain.PERSONAL_SOCIAL, Subdomain: "Imitation", AgeInMonths: 15, Weight: 2.0,
			Options: milestoneOptions("Pas d'imitation", "Imitation spontanée et variée"),
			Source:  sourceMCHAT, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "soc_pretend_play_24m", Text: "Votre enfant joue-t-il à faire semblant (nourrir une poupée, téléphoner) ?",
			Domain: domain.PERSONAL_SOCIAL, Subdomain: "Jeu symbolique", AgeInMonths: 24, Weight: 2.0,
			Options: milestoneOptions("Jeu symbolique absent", "Jeu de faire-semblant riche"),
			Source:  sourceMCHAT, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "soc_plays_peers_36m", Text: "Votre enfant joue-t-il avec d'autres enfants en respectant des tours ?",
			Domain: domain.PERSONAL_SOCIAL, Subdomain: "Relations aux pairs", AgeInMonths: 36, Weight: 1.5,
			Options: milestoneOptions("Évite ou ignore les autres enfants", "Jeu coopératif avec les pairs"),
			Source:  sourceCDC, EvidenceLevel: evidenceModerate,
		},
	}
}

func adaptiveQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "adp_finger_food_9m", Text: "Votre enfant mange-t-il seul des morceaux avec ses doigts ?",
			Domain: domain.ADAPTIVE_BEHAVIOR, Subdomain: "Alimentation", AgeInMonths: 9, Weight: 1.5,
			Options: milestoneOptions("Ne porte pas la nourriture à sa bouche", "Mange seul avec les doigts"),
			Source:  sourceVineland, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "adp_cup_15m", Text: "Votre enfant boit-il dans un verre ou une tasse en le tenant ?",
			Domain: domain.ADAPTIVE_BEHAVIOR, Subdomain: "Alimentation", AgeInMonths: 15, Weight: 1.0,
			Options: observedOptions("Ne boit pas au verre", "Boit seul au verre"),
			Source:  sourceDenver, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "adp_spoon_18m", Text: "Votre enfant utilise-t-il une cuillère en renversant peu ?",
			Domain: domain.ADAPTIVE_BEHAVIOR, Subdomain: "Alimentation", AgeInMonths: 18, CriticalAge: true, Weight: 2.0,
			Options: milestoneOptions("N'utilise pas la cuillère", "Utilisation autonome de la cuillère"),
			Source:  sourceVineland, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "adp_undress_30m", Text: "Votre enfant participe-t-il à son habillage (enlève ses chaussettes, son manteau) ?",
			Domain: domain.ADAPTIVE_BEHAVIOR, Subdomain: "Habillage", AgeInMonths: 30, Weight: 1.5,
			Options: milestoneOptions("Aucune participation à l'habillage", "Se déshabille seul en partie"),
			Source:  sourceVineland, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "adp_toilet_48m", Text: "Votre enfant est-il propre la journée ?",
			Domain: domain.ADAPTIVE_BEHAVIOR, Subdomain: "Propreté", AgeInMonths: 48, Weight: 1.5,
			Options: []domain.EvaluationOption{
				{Value: "no", Label: "Non", Score: 0, ClinicalInterpretation: "Propreté diurne non acquise", Percentile: percentile(5)},
				{Value: "accidents", Label: "Accidents fréquents", Score: 2, ClinicalInterpretation: "Propreté en cours d'acquisition", Percentile: percentile(30)},
				{Value: "rare_accidents", Label: "Accidents rares", Score: 3, ClinicalInterpretation: "Propreté presque acquise", Percentile: percentile(60)},
				{Value: "yes", Label: "Oui", Score: 4, ClinicalInterpretation: "Propreté diurne acquise", Percentile: percentile(90)},
			},
			Source: sourceVineland, EvidenceLevel: evidenceExpert,
		},
	}
}

func cognitiveQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "cog_tracks_2m", Text: "Votre enfant suit-il des yeux un visage ou un objet qui se déplace ?",
			Domain: domain.COGNITIVE, Subdomain: "Attention visuelle", AgeInMonths: 2, CriticalAge: true, Weight: 2.0,
			Options: milestoneOptions("Poursuite visuelle absente : signe d'alerte", "Poursuite visuelle fluide"),
			Source:  sourceBayley, EvidenceLevel: evidenceHigh,
		},
		{
			ID: "cog_recognizes_6m", Text: "Votre enfant reconnaît-il les personnes familières et réagit-il aux inconnus ?",
			Domain: domain.COGNITIVE, Subdomain: "Mémoire", AgeInMonths: 6, Weight: 1.5,
			Options: milestoneOptions("Aucune différence entre proches et inconnus", "Reconnaissance claire des proches"),
			Source:  sourceCDC, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "cog_body_parts_18m", Text: "Votre enfant montre-t-il au moins deux parties du corps quand on les nomme ?",
			Domain: domain.COGNITIVE, Subdomain: "Compréhension symbolique", AgeInMonths: 18, Weight: 2.0,
			Options: milestoneOptions("Ne désigne aucune partie du corps", "Désigne plusieurs parties du corps"),
			Source:  sourceBayley, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "cog_sorting_36m", Text: "Votre enfant trie-t-il des objets par couleur ou par forme ?",
			Domain: domain.COGNITIVE, Subdomain: "Catégorisation", AgeInMonths: 36, Weight: 1.5,
			Options: observedOptions("Tri impossible", "Tri réalisé seul"),
			Source:  sourceBayley, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "cog_counting_48m", Text: "Votre enfant compte-t-il correctement jusqu'à trois objets ?",
			Domain: domain.COGNITIVE, Subdomain: "Nombre", AgeInMonths: 48, Weight: 1.5,
			Options: milestoneOptions("Aucune notion de quantité", "Dénombrement jusqu'à trois acquis"),
			Source:  sourceCDC, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "cog_time_concepts_60m", Text: "Votre enfant comprend-il « hier », « aujourd'hui » et « demain » ?",
			Domain: domain.COGNITIVE, Subdomain: "Concepts temporels", AgeInMonths: 60, Weight: 1.0,
			Options: milestoneOptions("Aucune notion temporelle", "Notions temporelles utilisées à bon escient"),
			Source:  sourceCDC, EvidenceLevel: evidenceExpert,
		},
	}
}

func emotionalQuestions() []domain.EvaluationQuestion {
	return []domain.EvaluationQuestion{
		{
			ID: "emo_soothes_3m", Text: "Votre enfant se calme-t-il quand vous le prenez dans vos bras ou lui parlez ?",
			Domain: domain.EMOTIONAL_REGULATION, Subdomain: "Apaisement", AgeInMonths: 3, CriticalAge: true, Weight: 2.0,
			Options: milestoneOptions("Pleurs inconsolables : signe d'alerte", "S'apaise facilement avec l'adulte"),
			Source:  sourceITSEA, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "emo_self_comfort_12m", Text: "Votre enfant se console-t-il avec un doudou ou un objet familier ?",
			Domain: domain.EMOTIONAL_REGULATION, Subdomain: "Autorégulation", AgeInMonths: 12, Weight: 1.5,
			Options: milestoneOptions("Aucune stratégie d'auto-apaisement", "Auto-apaisement efficace"),
			Source:  sourceITSEA, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "emo_separation_24m", Text: "Votre enfant tolère-t-il une courte séparation avec un adulte familier ?",
			Domain: domain.EMOTIONAL_REGULATION, Subdomain: "Attachement", AgeInMonths: 24, Weight: 1.5,
			Options: milestoneOptions("Détresse extrême et durable à chaque séparation", "Séparations bien tolérées"),
			Source:  sourceITSEA, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "emo_frustration_36m", Text: "Après une frustration, votre enfant retrouve-t-il son calme en quelques minutes ?",
			Domain: domain.EMOTIONAL_REGULATION, Subdomain: "Gestion de la frustration", AgeInMonths: 36, Weight: 2.0,
			Options: milestoneOptions("Colères prolongées et fréquentes", "Récupération rapide après frustration"),
			Source:  sourceITSEA, EvidenceLevel: evidenceModerate,
		},
		{
			ID: "emo_names_feelings_48m", Text: "Votre enfant nomme-t-il ses émotions (content, triste, en colère, peur) ?",
			Domain: domain.EMOTIONAL_REGULATION, Subdomain: "Expression émotionnelle", AgeInMonths: 48, Weight: 1.5,
			Options: milestoneOptions("Ne nomme aucune émotion", "Nomme plusieurs émotions à propos"),
			Source:  sourceCDC, EvidenceLevel: evidenceExpert,
		},
	}
}
