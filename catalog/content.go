package catalog

// Example is a worked exercise inside a subtopic
type Example struct {
	Problem    string   `json:"problem"`
	Solution   string   `json:"solution"`
	Difficulty string   `json:"difficulty"` // easy | medium | hard
	Steps      []string `json:"steps,omitempty"`
}

// SubTopic is one teachable block of a lesson
type SubTopic struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Theory   []string  `json:"theory"`
	Formulas []string  `json:"formulas,omitempty"`
	Examples []Example `json:"examples"`
	Tips     []string  `json:"tips,omitempty"`
}

// TopicContent is the deep study material for a lesson. Not every
// lesson carries one; the timer falls back to the lesson's short
// content bullets when missing.
type TopicContent struct {
	ID           string     `json:"id"`
	LessonID     string     `json:"lesson_id"`
	Title        string     `json:"title"`
	Introduction string     `json:"introduction"`
	Subtopics    []SubTopic `json:"subtopics"`
	Summary      []string   `json:"summary"`
}

var contentByLessonID map[string]*TopicContent

func init() {
	contentByLessonID = make(map[string]*TopicContent, len(topicContents))
	for i := range topicContents {
		contentByLessonID[topicContents[i].LessonID] = &topicContents[i]
	}
}

// ContentForLesson returns the deep content for a lesson, if any
func ContentForLesson(lessonID string) (*TopicContent, bool) {
	c, ok := contentByLessonID[lessonID]
	return c, ok
}

var topicContents = []TopicContent{
	{
		ID:           "limites-concepto",
		LessonID:     "limites-1",
		Title:        "Concepto de Límite",
		Introduction: "El límite es uno de los conceptos fundamentales del cálculo. Describe el comportamiento de una función cuando la variable independiente se aproxima a un valor específico, sin necesariamente alcanzarlo.",
		Subtopics: []SubTopic{
			{
				ID:    "definicion-intuitiva",
				Title: "Definición Intuitiva de Límite",
				Theory: []string{
					"Decimos que el límite de f(x) cuando x tiende a \"a\" es igual a L, y escribimos:",
					"lim(x→a) f(x) = L",
					"si podemos hacer que f(x) esté tan cerca de L como queramos, tomando x suficientemente cerca de \"a\" (pero x ≠ a).",
					"El límite describe hacia dónde \"va\" la función, no necesariamente dónde \"está\".",
					"Es importante entender que el valor de f(a) puede ser diferente de L, o incluso puede no existir.",
				},
				Formulas: []string{
					"lim(x→a) f(x) = L",
					"Esto significa: ∀ε > 0, ∃δ > 0 tal que si 0 < |x - a| < δ, entonces |f(x) - L| < ε",
				},
				Examples: []Example{
					{
						Problem:    "Calcular lim(x→3) (2x + 1)",
						Solution:   "Sustitución directa: 2(3) + 1 = 7",
						Difficulty: "easy",
						Steps: []string{
							"Como la función es continua (polinomio), podemos sustituir directamente",
							"f(3) = 2(3) + 1 = 6 + 1 = 7",
							"Por lo tanto, lim(x→3) (2x + 1) = 7",
						},
					},
					{
						Problem:    "Calcular lim(x→2) (x² - 4)/(x - 2)",
						Solution:   "Factorizando: (x-2)(x+2)/(x-2) = x+2, entonces el límite es 4",
						Difficulty: "medium",
						Steps: []string{
							"Al sustituir x=2 obtenemos 0/0 (indeterminación)",
							"Factorizamos el numerador: x² - 4 = (x-2)(x+2)",
							"Simplificamos: (x-2)(x+2)/(x-2) = x+2 (para x≠2)",
							"Ahora sí podemos sustituir: lim(x→2) (x+2) = 4",
						},
					},
					{
						Problem:    "Calcular lim(x→0) (√(x+1) - 1)/x",
						Solution:   "Racionalizando: 1/(√(x+1) + 1), el límite es 1/2",
						Difficulty: "hard",
						Steps: []string{
							"Al sustituir x=0 obtenemos 0/0 (indeterminación)",
							"Multiplicamos por el conjugado: (√(x+1) - 1)(√(x+1) + 1) / x(√(x+1) + 1)",
							"El numerador queda: (x+1) - 1 = x",
							"Simplificamos: x / (x(√(x+1) + 1)) = 1/(√(x+1) + 1)",
							"Sustituyendo: 1/(√(0+1) + 1) = 1/(1+1) = 1/2",
						},
					},
				},
				Tips: []string{
					"Siempre intenta la sustitución directa primero",
					"Si obtienes 0/0, busca factorizar o racionalizar",
					"Recuerda que el límite puede existir aunque la función no esté definida en ese punto",
				},
			},
			{
				ID:    "definicion-formal",
				Title: "Definición Formal (Épsilon-Delta)",
				Theory: []string{
					"La definición formal del límite fue desarrollada por Cauchy y Weierstrass.",
					"lim(x→a) f(x) = L si y solo si:",
					"Para todo número ε > 0 (épsilon), existe un número δ > 0 (delta) tal que:",
					"Si 0 < |x - a| < δ, entonces |f(x) - L| < ε",
					"Intuitivamente: podemos hacer f(x) tan cercano a L como queramos (distancia < ε), si tomamos x suficientemente cercano a \"a\" (distancia < δ).",
				},
				Formulas: []string{
					"∀ε > 0, ∃δ > 0 : 0 < |x - a| < δ ⟹ |f(x) - L| < ε",
					"La condición 0 < |x - a| significa que x ≠ a",
				},
				Examples: []Example{
					{
						Problem:    "Demostrar que lim(x→2) (3x - 1) = 5 usando épsilon-delta",
						Solution:   "Tomar δ = ε/3",
						Difficulty: "hard",
						Steps: []string{
							"Queremos: |f(x) - L| < ε, es decir |(3x-1) - 5| < ε",
							"Simplificando: |3x - 6| < ε → |3(x-2)| < ε → 3|x-2| < ε",
							"Dividiendo: |x - 2| < ε/3",
							"Si elegimos δ = ε/3, entonces:",
							"Si |x - 2| < δ = ε/3, entonces |3x - 6| = 3|x-2| < 3(ε/3) = ε",
							"Esto demuestra que lim(x→2) (3x-1) = 5",
						},
					},
				},
			},
		},
		Summary: []string{
			"El límite describe el comportamiento de f(x) cuando x se aproxima a un valor",
			"La definición formal usa épsilon (tolerancia en y) y delta (tolerancia en x)",
			"El límite puede existir aunque f(a) no esté definida",
			"Técnicas comunes: sustitución directa, factorización, racionalización",
		},
	},
	{
		ID:           "limites-laterales",
		LessonID:     "limites-2",
		Title:        "Límites Laterales",
		Introduction: "Los límites laterales nos permiten analizar el comportamiento de una función desde un solo lado (izquierda o derecha). Son fundamentales para entender discontinuidades y funciones definidas por partes.",
		Subtopics: []SubTopic{
			{
				ID:    "limite-izquierda",
				Title: "Límite por la Izquierda",
				Theory: []string{
					"El límite por la izquierda se denota como: lim(x→a⁻) f(x)",
					"Describe el comportamiento cuando x se acerca a \"a\" desde valores menores que \"a\"",
					"También se escribe: lim(x→a⁻) f(x) = L",
					"Ejemplo visual: si a = 2, consideramos valores como 1.9, 1.99, 1.999...",
				},
				Formulas: []string{
					"lim(x→a⁻) f(x) = L",
					"x → a⁻ significa x < a y x → a",
				},
				Examples: []Example{
					{
						Problem:    "Para f(x) = |x|/x, calcular lim(x→0⁻) f(x)",
						Solution:   "Para x < 0: |x|/x = -x/x = -1, entonces el límite es -1",
						Difficulty: "medium",
						Steps: []string{
							"Cuando x < 0, tenemos |x| = -x",
							"Entonces f(x) = -x/x = -1 para todo x < 0",
							"Por lo tanto, lim(x→0⁻) |x|/x = -1",
						},
					},
				},
			},
			{
				ID:    "limite-derecha",
				Title: "Límite por la Derecha",
				Theory: []string{
					"El límite por la derecha se denota como: lim(x→a⁺) f(x)",
					"Describe el comportamiento cuando x se acerca a \"a\" desde valores mayores que \"a\"",
					"Ejemplo visual: si a = 2, consideramos valores como 2.1, 2.01, 2.001...",
				},
				Formulas: []string{
					"lim(x→a⁺) f(x) = L",
					"x → a⁺ significa x > a y x → a",
				},
				Examples: []Example{
					{
						Problem:    "Para f(x) = |x|/x, calcular lim(x→0⁺) f(x)",
						Solution:   "Para x > 0: |x|/x = x/x = 1, entonces el límite es 1",
						Difficulty: "medium",
						Steps: []string{
							"Cuando x > 0, tenemos |x| = x",
							"Entonces f(x) = x/x = 1 para todo x > 0",
							"Por lo tanto, lim(x→0⁺) |x|/x = 1",
						},
					},
				},
			},
			{
				ID:    "existencia-limite",
				Title: "Condición de Existencia del Límite",
				Theory: []string{
					"El límite lim(x→a) f(x) existe si y solo si:",
					"1. Existe lim(x→a⁻) f(x)",
					"2. Existe lim(x→a⁺) f(x)",
					"3. lim(x→a⁻) f(x) = lim(x→a⁺) f(x)",
					"Si los límites laterales son diferentes, el límite bilateral NO existe.",
				},
				Examples: []Example{
					{
						Problem:    "¿Existe lim(x→0) |x|/x?",
						Solution:   "No existe, porque los límites laterales son -1 y 1",
						Difficulty: "medium",
						Steps: []string{
							"lim(x→0⁻) |x|/x = -1",
							"lim(x→0⁺) |x|/x = 1",
							"Como -1 ≠ 1, el límite bilateral no existe",
						},
					},
				},
				Tips: []string{
					"Las funciones definidas por partes requieren analizar ambos límites laterales",
					"Un salto en la gráfica indica límites laterales diferentes",
				},
			},
		},
		Summary: []string{
			"El límite por la izquierda considera x < a; por la derecha, x > a",
			"El límite bilateral existe solo si ambos laterales existen y coinciden",
			"Los límites laterales detectan discontinuidades de salto",
		},
	},
	{
		ID:           "derivada-definicion",
		LessonID:     "derivadas-1",
		Title:        "Definición de Derivada",
		Introduction: "La derivada es uno de los conceptos centrales del cálculo. Representa la tasa de cambio instantánea de una función y tiene interpretaciones geométricas (pendiente de la tangente) y físicas (velocidad instantánea).",
		Subtopics: []SubTopic{
			{
				ID:    "concepto-derivada",
				Title: "Concepto y Definición",
				Theory: []string{
					"La derivada de f en x se define como:",
					"f'(x) = lim(h→0) [f(x+h) - f(x)]/h",
					"También se escribe como df/dx o Df(x)",
					"Geométricamente, es la pendiente de la recta tangente a la curva en ese punto",
					"Físicamente, representa la velocidad instantánea si f es posición",
				},
				Formulas: []string{
					"f'(x) = lim(h→0) [f(x+h) - f(x)]/h",
					"f'(a) = lim(x→a) [f(x) - f(a)]/(x - a)",
				},
				Examples: []Example{
					{
						Problem:    "Calcular la derivada de f(x) = x² usando la definición",
						Solution:   "f'(x) = 2x",
						Difficulty: "medium",
						Steps: []string{
							"f'(x) = lim(h→0) [(x+h)² - x²]/h",
							"= lim(h→0) [x² + 2xh + h² - x²]/h",
							"= lim(h→0) [2xh + h²]/h",
							"= lim(h→0) h(2x + h)/h",
							"= lim(h→0) (2x + h) = 2x",
						},
					},
					{
						Problem:    "Calcular f'(2) para f(x) = 3x² - 2x + 1",
						Solution:   "f'(2) = 10",
						Difficulty: "easy",
						Steps: []string{
							"Primero hallamos f'(x) = 6x - 2",
							"Luego evaluamos: f'(2) = 6(2) - 2 = 12 - 2 = 10",
						},
					},
				},
				Tips: []string{
					"La derivada existe solo si el límite existe",
					"Una función puede ser continua pero no derivable (ej: |x| en x=0)",
				},
			},
			{
				ID:    "interpretacion-geometrica",
				Title: "Interpretación Geométrica",
				Theory: []string{
					"f'(a) es la pendiente de la recta tangente a y = f(x) en el punto (a, f(a))",
					"Ecuación de la recta tangente: y - f(a) = f'(a)(x - a)",
					"Si f'(a) > 0, la función crece en ese punto",
					"Si f'(a) < 0, la función decrece en ese punto",
					"Si f'(a) = 0, posible máximo, mínimo o punto de inflexión",
				},
				Examples: []Example{
					{
						Problem:    "Hallar la ecuación de la recta tangente a f(x) = x² en x = 3",
						Solution:   "y = 6x - 9",
						Difficulty: "medium",
						Steps: []string{
							"f(3) = 9, así que el punto es (3, 9)",
							"f'(x) = 2x, entonces f'(3) = 6",
							"Ecuación: y - 9 = 6(x - 3)",
							"y = 6x - 18 + 9 = 6x - 9",
						},
					},
				},
			},
		},
		Summary: []string{
			"f'(x) = lim(h→0) [f(x+h) - f(x)]/h define la derivada",
			"Geométricamente es la pendiente de la tangente",
			"Físicamente representa la tasa de cambio instantánea",
		},
	},
	{
		ID:           "termoquimica-intro",
		LessonID:     "termo-1",
		Title:        "Introducción a la Termoquímica",
		Introduction: "La termoquímica estudia los cambios de energía que acompañan a las reacciones químicas. Comprender estos cambios es fundamental para predecir si una reacción ocurrirá espontáneamente y cómo se puede controlar.",
		Subtopics: []SubTopic{
			{
				ID:    "conceptos-basicos",
				Title: "Conceptos Fundamentales",
				Theory: []string{
					"Sistema: la parte del universo que estamos estudiando",
					"Entorno: todo lo que rodea al sistema",
					"Sistema abierto: intercambia materia y energía con el entorno",
					"Sistema cerrado: solo intercambia energía (no materia)",
					"Sistema aislado: no intercambia ni materia ni energía",
					"Energía interna (U): suma de todas las energías de las partículas del sistema",
				},
				Formulas: []string{
					"ΔU = q + w (Primera Ley de la Termodinámica)",
					"q = calor transferido",
					"w = trabajo realizado",
				},
				Examples: []Example{
					{
						Problem:    "Un sistema absorbe 500 J de calor y realiza 200 J de trabajo. ¿Cuál es el cambio en la energía interna?",
						Solution:   "ΔU = q + w = 500 + (-200) = 300 J",
						Difficulty: "easy",
						Steps: []string{
							"Datos: q = +500 J (absorbe calor, positivo)",
							"w = -200 J (el sistema realiza trabajo, negativo)",
							"Aplicamos: ΔU = q + w = 500 + (-200) = 300 J",
							"La energía interna aumenta en 300 J",
						},
					},
				},
			},
			{
				ID:    "entalpia",
				Title: "Entalpía (H)",
				Theory: []string{
					"La entalpía H es una función de estado que representa el contenido calórico del sistema a presión constante.",
					"H = U + PV",
					"Para reacciones a presión constante: ΔH = q_p",
					"ΔH < 0: reacción exotérmica (libera calor)",
					"ΔH > 0: reacción endotérmica (absorbe calor)",
				},
				Formulas: []string{
					"H = U + PV",
					"ΔH = ΔU + PΔV (a presión constante)",
					"ΔH°rxn = Σ ΔH°f(productos) - Σ ΔH°f(reactivos)",
				},
				Examples: []Example{
					{
						Problem:    "La combustión del metano tiene ΔH = -890 kJ/mol. ¿Es exotérmica o endotérmica? ¿Qué significa?",
						Solution:   "Es exotérmica porque ΔH < 0. Libera 890 kJ por cada mol de CH₄ quemado.",
						Difficulty: "easy",
						Steps: []string{
							"ΔH = -890 kJ/mol (valor negativo)",
							"Como ΔH < 0, la reacción es EXOTÉRMICA",
							"Esto significa que libera energía al entorno",
							"CH₄ + 2O₂ → CO₂ + 2H₂O + 890 kJ",
						},
					},
					{
						Problem:    "Calcular ΔH° para: 2H₂(g) + O₂(g) → 2H₂O(l). Datos: ΔH°f[H₂O(l)] = -286 kJ/mol",
						Solution:   "ΔH° = 2(-286) - 0 = -572 kJ",
						Difficulty: "medium",
						Steps: []string{
							"Usamos: ΔH°rxn = Σ ΔH°f(productos) - Σ ΔH°f(reactivos)",
							"ΔH°f de elementos en estado estándar = 0",
							"ΔH° = 2·ΔH°f[H₂O(l)] - [2·ΔH°f(H₂) + ΔH°f(O₂)]",
							"ΔH° = 2(-286) - [0 + 0] = -572 kJ",
						},
					},
				},
				Tips: []string{
					"Las entalpías de formación de elementos puros en estado estándar son CERO",
					"Exotérmica = libera calor = ΔH negativo",
					"Endotérmica = absorbe calor = ΔH positivo",
				},
			},
		},
		Summary: []string{
			"La termoquímica estudia la energía en reacciones químicas",
			"Primera Ley: ΔU = q + w (conservación de energía)",
			"Entalpía (H) mide el calor a presión constante",
			"ΔH < 0: exotérmica; ΔH > 0: endotérmica",
		},
	},
}
