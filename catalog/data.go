package catalog

// Demo course catalog with units, lessons and quiz banks. Static and
// immutable, indexed once at init.
var courses = []Course{
	{
		ID:          "calculo",
		Name:        "Cálculo de una Variable",
		Icon:        "📐",
		Color:       "#6c5ce7",
		Description: "Límites, derivadas e integrales",
		Units: []Unit{
			{
				ID:    "limites",
				Title: "Límites",
				Lessons: []Lesson{
					{
						ID:          "limites-1",
						Title:       "Concepto de Límite",
						Description: "Introducción al concepto de límite y su interpretación geométrica",
						Duration:    30,
						Content: []string{
							"El límite describe el comportamiento de una función cuando x se acerca a un valor",
							"Notación: lim(x→a) f(x) = L",
							"El límite puede existir aunque la función no esté definida en ese punto",
						},
						Quiz: []Question{
							{
								ID:           "lim-q1",
								Question:     "¿Cuál es el valor de lim(x→2) (x² - 4)/(x - 2)?",
								Options:      []string{"0", "4", "2", "No existe"},
								CorrectIndex: 1,
								Explanation:  "Factorizando: (x²-4)/(x-2) = (x+2)(x-2)/(x-2) = x+2. Cuando x→2, el límite es 2+2 = 4",
							},
							{
								ID:       "lim-q2",
								Question: "Si lim(x→a) f(x) = L, esto significa que:",
								Options: []string{
									"f(a) = L siempre",
									"f(x) se acerca a L cuando x se acerca a a",
									"La función es continua en a",
									"La función está definida en a",
								},
								CorrectIndex: 1,
								Explanation:  "El límite describe el comportamiento de f(x) cuando x se aproxima a \"a\", independientemente del valor de f(a).",
							},
							{
								ID:           "lim-q3",
								Question:     "¿Cuál es lim(x→0) sen(x)/x?",
								Options:      []string{"0", "1", "Infinito", "No existe"},
								CorrectIndex: 1,
								Explanation:  "Este es un límite fundamental en cálculo. lim(x→0) sen(x)/x = 1, demostrable por L'Hôpital o geométricamente.",
							},
						},
					},
					{
						ID:          "limites-2",
						Title:       "Límites Laterales",
						Description: "Límites por la izquierda y por la derecha",
						Duration:    25,
						Content: []string{
							"Límite por la izquierda: lim(x→a⁻) f(x)",
							"Límite por la derecha: lim(x→a⁺) f(x)",
							"El límite existe si y solo si ambos límites laterales existen y son iguales",
						},
						Quiz: []Question{
							{
								ID:           "limlat-q1",
								Question:     "Para f(x) = |x|/x, ¿cuál es lim(x→0⁺) f(x)?",
								Options:      []string{"-1", "0", "1", "No existe"},
								CorrectIndex: 2,
								Explanation:  "Cuando x > 0, |x| = x, entonces |x|/x = x/x = 1",
							},
							{
								ID:       "limlat-q2",
								Question: "¿Cuándo existe el límite lim(x→a) f(x)?",
								Options: []string{
									"Cuando f(a) está definida",
									"Cuando los límites laterales son diferentes",
									"Cuando ambos límites laterales existen e son iguales",
									"Siempre existe",
								},
								CorrectIndex: 2,
								Explanation:  "El límite existe si y solo si lim(x→a⁻) f(x) = lim(x→a⁺) f(x)",
							},
						},
					},
				},
			},
			{
				ID:    "derivadas",
				Title: "Derivadas",
				Lessons: []Lesson{
					{
						ID:          "derivadas-1",
						Title:       "Definición de Derivada",
						Description: "La derivada como límite y su interpretación geométrica",
						Duration:    35,
						Content: []string{
							"f'(x) = lim(h→0) [f(x+h) - f(x)]/h",
							"La derivada representa la pendiente de la recta tangente",
							"Mide la tasa de cambio instantánea de la función",
						},
						Quiz: []Question{
							{
								ID:           "der-q1",
								Question:     "Si f(x) = x³, ¿cuál es f'(x)?",
								Options:      []string{"x²", "3x²", "3x", "x³"},
								CorrectIndex: 1,
								Explanation:  "Usando la regla de potencias: d/dx(xⁿ) = n·xⁿ⁻¹, entonces d/dx(x³) = 3x²",
							},
							{
								ID:       "der-q2",
								Question: "La derivada de una función en un punto representa:",
								Options: []string{
									"El área bajo la curva",
									"El valor máximo de la función",
									"La pendiente de la recta tangente en ese punto",
									"La distancia al origen",
								},
								CorrectIndex: 2,
								Explanation:  "Geométricamente, f'(a) es la pendiente de la recta tangente a la curva en el punto (a, f(a)).",
							},
							{
								ID:           "der-q3",
								Question:     "¿Cuál es la derivada de f(x) = sen(x) · cos(x)?",
								Options:      []string{"cos²(x) - sen²(x)", "sen(x) + cos(x)", "-sen(x)cos(x)", "2sen(x)cos(x)"},
								CorrectIndex: 0,
								Explanation:  "Por regla del producto: f'(x) = cos(x)·cos(x) + sen(x)·(-sen(x)) = cos²(x) - sen²(x)",
							},
						},
					},
					{
						ID:          "derivadas-2",
						Title:       "Reglas de Derivación",
						Description: "Reglas del producto, cociente y cadena",
						Duration:    40,
						Content: []string{
							"Regla del producto: (fg)' = f'g + fg'",
							"Regla del cociente: (f/g)' = (f'g - fg')/g²",
							"Regla de la cadena: (f∘g)' = f'(g(x))·g'(x)",
						},
						Quiz: []Question{
							{
								ID:           "reglas-q1",
								Question:     "Si f(x) = (2x + 1)⁵, ¿cuál es f'(x)?",
								Options:      []string{"5(2x+1)⁴", "10(2x+1)⁴", "(2x+1)⁴", "10(2x+1)⁵"},
								CorrectIndex: 1,
								Explanation:  "Por regla de la cadena: f'(x) = 5(2x+1)⁴ · 2 = 10(2x+1)⁴",
							},
							{
								ID:           "reglas-q2",
								Question:     "La derivada de f(x) = x²·eˣ es:",
								Options:      []string{"2x·eˣ", "x²·eˣ", "(2x + x²)·eˣ", "2x + eˣ"},
								CorrectIndex: 2,
								Explanation:  "Por regla del producto: f'(x) = 2x·eˣ + x²·eˣ = (2x + x²)·eˣ",
							},
						},
					},
				},
			},
			{
				ID:    "integrales-indef",
				Title: "Integrales Indefinidas",
				Lessons: []Lesson{
					{
						ID:          "int-indef-1",
						Title:       "Antiderivadas",
						Description: "Concepto de integral indefinida y reglas básicas",
						Duration:    30,
						Content: []string{
							"∫f(x)dx = F(x) + C donde F'(x) = f(x)",
							"∫xⁿdx = xⁿ⁺¹/(n+1) + C para n ≠ -1",
							"∫eˣdx = eˣ + C",
						},
						Quiz: []Question{
							{
								ID:           "antider-q1",
								Question:     "¿Cuál es ∫x⁴dx?",
								Options:      []string{"x⁵ + C", "x⁵/5 + C", "4x³ + C", "x⁴/4 + C"},
								CorrectIndex: 1,
								Explanation:  "Usando ∫xⁿdx = xⁿ⁺¹/(n+1) + C: ∫x⁴dx = x⁵/5 + C",
							},
							{
								ID:           "antider-q2",
								Question:     "∫(3x² + 2x - 1)dx es igual a:",
								Options:      []string{"6x + 2 + C", "x³ + x² - x + C", "3x³ + 2x² - x + C", "x³ + x² + C"},
								CorrectIndex: 1,
								Explanation:  "Integrando término a término: ∫3x²dx + ∫2xdx - ∫1dx = x³ + x² - x + C",
							},
						},
					},
				},
			},
			{
				ID:    "integrales-def",
				Title: "Integrales Definidas",
				Lessons: []Lesson{
					{
						ID:          "int-def-1",
						Title:       "Teorema Fundamental del Cálculo",
						Description: "Relación entre derivación e integración",
						Duration:    35,
						Content: []string{
							"∫ₐᵇ f(x)dx = F(b) - F(a)",
							"La integral definida representa el área bajo la curva",
							"Propiedades de linealidad de la integral",
						},
						Quiz: []Question{
							{
								ID:           "intdef-q1",
								Question:     "¿Cuál es el valor de ∫₀² x²dx?",
								Options:      []string{"4/3", "8/3", "4", "2"},
								CorrectIndex: 1,
								Explanation:  "∫₀² x²dx = [x³/3]₀² = 8/3 - 0 = 8/3",
							},
							{
								ID:       "intdef-q2",
								Question: "∫₁³ 2xdx representa:",
								Options: []string{
									"La pendiente de 2x entre 1 y 3",
									"El área bajo la recta y = 2x desde x=1 hasta x=3",
									"El valor de 2x en x = 2",
									"La derivada de x² evaluada en 3",
								},
								CorrectIndex: 1,
								Explanation:  "La integral definida representa el área bajo la curva y = 2x en el intervalo [1,3]. Su valor es [x²]₁³ = 9 - 1 = 8",
							},
						},
					},
				},
			},
		},
	},
	{
		ID:          "quimica",
		Name:        "Química General",
		Icon:        "🧪",
		Color:       "#00b894",
		Description: "Termoquímica, soluciones y equilibrio",
		Units: []Unit{
			{
				ID:    "termoquimica",
				Title: "Introducción a la Termoquímica",
				Lessons: []Lesson{
					{
						ID:          "termo-1",
						Title:       "Energía y Reacciones Químicas",
						Description: "Entalpía, reacciones exotérmicas y endotérmicas",
						Duration:    35,
						Content: []string{
							"ΔH < 0: Reacción exotérmica (libera calor)",
							"ΔH > 0: Reacción endotérmica (absorbe calor)",
							"Ley de Hess: ΔH total = suma de ΔH parciales",
						},
						Quiz: []Question{
							{
								ID:           "termo-q1",
								Question:     "Una reacción con ΔH = -285 kJ/mol es:",
								Options:      []string{"Endotérmica", "Exotérmica", "En equilibrio", "Reversible"},
								CorrectIndex: 1,
								Explanation:  "Un ΔH negativo indica que la reacción libera energía al entorno, por lo tanto es exotérmica.",
							},
							{
								ID:           "termo-q2",
								Question:     "La combustión del metano (CH₄ + 2O₂ → CO₂ + 2H₂O) tiene ΔH = -890 kJ. ¿Cuánta energía se libera al quemar 2 moles de metano?",
								Options:      []string{"445 kJ", "890 kJ", "1780 kJ", "2670 kJ"},
								CorrectIndex: 2,
								Explanation:  "Si 1 mol libera 890 kJ, entonces 2 moles liberan 2 × 890 = 1780 kJ",
							},
							{
								ID:       "termo-q3",
								Question: "Según la Ley de Hess, la entalpía de una reacción:",
								Options: []string{
									"Depende del camino de reacción",
									"Es independiente del camino, solo depende de estados inicial y final",
									"Siempre es negativa",
									"Varía con la temperatura solamente",
								},
								CorrectIndex: 1,
								Explanation:  "La Ley de Hess establece que el cambio de entalpía es una función de estado, independiente del camino.",
							},
						},
					},
				},
			},
			{
				ID:    "fuerzas-inter",
				Title: "Fuerzas Intermoleculares",
				Lessons: []Lesson{
					{
						ID:          "fuerzas-1",
						Title:       "Tipos de Fuerzas Intermoleculares",
						Description: "Van der Waals, dipolo-dipolo, puentes de hidrógeno",
						Duration:    30,
						Content: []string{
							"Fuerzas de London: presentes en todas las moléculas",
							"Dipolo-dipolo: entre moléculas polares",
							"Puentes de hidrógeno: H unido a N, O o F",
						},
						Quiz: []Question{
							{
								ID:       "fuerzas-q1",
								Question: "¿Por qué el agua tiene un punto de ebullición tan alto comparado con H₂S?",
								Options: []string{
									"El agua es más pesada",
									"El agua forma puentes de hidrógeno",
									"El H₂S es un gas",
									"El oxígeno es más electronegativo que el azufre",
								},
								CorrectIndex: 1,
								Explanation:  "El agua forma puentes de hidrógeno (O-H···O) que son mucho más fuertes que las fuerzas dipolo-dipolo del H₂S.",
							},
							{
								ID:           "fuerzas-q2",
								Question:     "¿Cuál de estas sustancias NO puede formar puentes de hidrógeno?",
								Options:      []string{"NH₃", "HF", "CH₄", "H₂O"},
								CorrectIndex: 2,
								Explanation:  "El CH₄ no tiene H unido a N, O o F, por lo que no puede formar puentes de hidrógeno.",
							},
						},
					},
				},
			},
			{
				ID:    "liquidos-solidos",
				Title: "Líquidos y Sólidos",
				Lessons: []Lesson{
					{
						ID:          "estados-1",
						Title:       "Propiedades de Líquidos y Sólidos",
						Description: "Viscosidad, tensión superficial, estructuras cristalinas",
						Duration:    30,
						Content: []string{
							"Viscosidad: resistencia al flujo",
							"Tensión superficial: energía por unidad de área",
							"Sólidos cristalinos vs amorfos",
						},
						Quiz: []Question{
							{
								ID:       "liq-q1",
								Question: "La tensión superficial del agua permite que:",
								Options: []string{
									"El agua hierva a 100°C",
									"Algunos insectos caminen sobre el agua",
									"El agua se congele a 0°C",
									"El agua disuelva sales",
								},
								CorrectIndex: 1,
								Explanation:  "La alta tensión superficial del agua crea una \"película\" en la superficie que soporta objetos ligeros.",
							},
						},
					},
				},
			},
			{
				ID:    "disoluciones",
				Title: "Propiedades de las Disoluciones",
				Lessons: []Lesson{
					{
						ID:          "disol-1",
						Title:       "Concentración y Propiedades Coligativas",
						Description: "Molaridad, molalidad, presión osmótica",
						Duration:    35,
						Content: []string{
							"Molaridad (M) = moles soluto / litros solución",
							"Molalidad (m) = moles soluto / kg solvente",
							"ΔTeb = Kb · m · i (elevación del punto de ebullición)",
						},
						Quiz: []Question{
							{
								ID:           "disol-q1",
								Question:     "Si disuelves 58.5 g de NaCl (PM=58.5) en agua hasta completar 500 mL de solución, ¿cuál es la molaridad?",
								Options:      []string{"0.5 M", "1.0 M", "2.0 M", "0.25 M"},
								CorrectIndex: 2,
								Explanation:  "n = 58.5g / 58.5g/mol = 1 mol. M = 1 mol / 0.5 L = 2 M",
							},
							{
								ID:           "disol-q2",
								Question:     "¿Qué solución tiene mayor punto de ebullición?",
								Options:      []string{"1 m glucosa", "1 m NaCl", "1 m CaCl₂", "Agua pura"},
								CorrectIndex: 2,
								Explanation:  "CaCl₂ → Ca²⁺ + 2Cl⁻ produce 3 partículas (i=3), mayor elevación del punto de ebullición.",
							},
						},
					},
				},
			},
			{
				ID:    "cinetica",
				Title: "Cinética Química",
				Lessons: []Lesson{
					{
						ID:          "cinetica-1",
						Title:       "Velocidad de Reacción",
						Description: "Factores que afectan la velocidad, ecuación de velocidad",
						Duration:    35,
						Content: []string{
							"v = k[A]ⁿ[B]ᵐ (ley de velocidad)",
							"Factores: temperatura, concentración, catalizadores",
							"Energía de activación (Ea)",
						},
						Quiz: []Question{
							{
								ID:       "cin-q1",
								Question: "Si la velocidad = k[A]²[B], ¿qué pasa si duplicamos [A]?",
								Options: []string{
									"La velocidad se duplica",
									"La velocidad se cuadruplica",
									"La velocidad se triplica",
									"No cambia",
								},
								CorrectIndex: 1,
								Explanation:  "v = k[2A]²[B] = k·4[A]²[B] = 4v. Al duplicar [A], la velocidad se multiplica por 2² = 4",
							},
							{
								ID:       "cin-q2",
								Question: "Un catalizador aumenta la velocidad de reacción porque:",
								Options: []string{
									"Aumenta la temperatura",
									"Disminuye la energía de activación",
									"Cambia el ΔH de la reacción",
									"Aumenta la concentración de reactivos",
								},
								CorrectIndex: 1,
								Explanation:  "El catalizador proporciona un camino alternativo con menor energía de activación, sin cambiar el ΔH.",
							},
						},
					},
				},
			},
			{
				ID:    "equilibrio",
				Title: "Equilibrio Químico",
				Lessons: []Lesson{
					{
						ID:          "eq-1",
						Title:       "Constante de Equilibrio",
						Description: "Kc, Kp y principio de Le Chatelier",
						Duration:    40,
						Content: []string{
							"Para aA + bB ⇌ cC + dD: Kc = [C]ᶜ[D]ᵈ/[A]ᵃ[B]ᵇ",
							"Le Chatelier: el sistema contrarresta los cambios",
							"Q vs K determina la dirección del equilibrio",
						},
						Quiz: []Question{
							{
								ID:       "eq-q1",
								Question: "Para N₂(g) + 3H₂(g) ⇌ 2NH₃(g), si aumentamos la presión:",
								Options: []string{
									"El equilibrio se desplaza hacia los reactivos",
									"El equilibrio se desplaza hacia los productos",
									"No hay cambio",
									"La reacción se detiene",
								},
								CorrectIndex: 1,
								Explanation:  "Al aumentar la presión, el equilibrio favorece el lado con menos moles de gas. Reactivos: 4 moles, Productos: 2 moles.",
							},
							{
								ID:       "eq-q2",
								Question: "Si Q < K para una reacción, entonces:",
								Options: []string{
									"El sistema está en equilibrio",
									"La reacción procederá hacia la derecha (productos)",
									"La reacción procederá hacia la izquierda (reactivos)",
									"La reacción es imposible",
								},
								CorrectIndex: 1,
								Explanation:  "Q < K significa que hay más reactivos de lo que habría en el equilibrio, así que la reacción avanza hacia productos.",
							},
						},
					},
				},
			},
			{
				ID:    "solubilidad",
				Title: "Equilibrio de Solubilidad",
				Lessons: []Lesson{
					{
						ID:          "sol-1",
						Title:       "Producto de Solubilidad (Kps)",
						Description: "Cálculos de solubilidad y precipitación",
						Duration:    30,
						Content: []string{
							"Para MₓAᵧ(s) ⇌ xMⁿ⁺(aq) + yAᵐ⁻(aq)",
							"Kps = [Mⁿ⁺]ˣ[Aᵐ⁻]ʸ",
							"Si Q > Kps, precipita",
						},
						Quiz: []Question{
							{
								ID:           "kps-q1",
								Question:     "El Kps del AgCl es 1.8×10⁻¹⁰. ¿Cuál es la solubilidad molar del AgCl?",
								Options:      []string{"1.8×10⁻¹⁰ M", "1.3×10⁻⁵ M", "9×10⁻⁶ M", "1.8×10⁻⁵ M"},
								CorrectIndex: 1,
								Explanation:  "AgCl → Ag⁺ + Cl⁻. Si s = solubilidad, Kps = s² = 1.8×10⁻¹⁰. s = √(1.8×10⁻¹⁰) ≈ 1.3×10⁻⁵ M",
							},
						},
					},
				},
			},
		},
	},
	{
		ID:          "programacion",
		Name:        "Fundamentos de Programación",
		Icon:        "💻",
		Color:       "#e17055",
		Description: "Variables, funciones y estructuras de datos",
		Units: []Unit{
			{
				ID:    "intro-prog",
				Title: "Introducción a la Programación",
				Lessons: []Lesson{
					{
						ID:          "intro-1",
						Title:       "Conceptos Básicos",
						Description: "Algoritmos, pseudocódigo y diagramas de flujo",
						Duration:    25,
						Content: []string{
							"Un algoritmo es una secuencia finita de pasos para resolver un problema",
							"El pseudocódigo describe algoritmos en lenguaje natural estructurado",
							"Los diagramas de flujo representan visualmente el flujo de un programa",
						},
						Quiz: []Question{
							{
								ID:       "intro-q1",
								Question: "¿Cuál de las siguientes es una característica de un algoritmo?",
								Options: []string{
									"Puede tener pasos infinitos",
									"Debe ser finito y tener un fin",
									"Solo puede escribirse en Python",
									"No requiere entrada ni salida",
								},
								CorrectIndex: 1,
								Explanation:  "Un algoritmo debe ser finito (terminar en algún momento), definido y efectivo.",
							},
							{
								ID:           "intro-q2",
								Question:     "En un diagrama de flujo, un rombo representa:",
								Options:      []string{"Una operación de entrada/salida", "Un proceso", "Una decisión", "El inicio/fin"},
								CorrectIndex: 2,
								Explanation:  "El rombo se usa para representar decisiones o condiciones (if/else).",
							},
						},
					},
				},
			},
			{
				ID:    "variables",
				Title: "Variables y Tipos de Datos",
				Lessons: []Lesson{
					{
						ID:          "var-1",
						Title:       "Variables y Asignación",
						Description: "Declaración de variables y tipos básicos",
						Duration:    30,
						Content: []string{
							"Una variable es un espacio en memoria con un nombre",
							"Tipos básicos: int, float, string, boolean",
							"Asignación: variable = valor",
						},
						Quiz: []Question{
							{
								ID:           "var-q1",
								Question:     "¿Qué valor tendrá x después de: x = 5; x = x + 3?",
								Options:      []string{"5", "3", "8", "53"},
								CorrectIndex: 2,
								Explanation:  "Primero x = 5, luego x = 5 + 3 = 8. La variable se actualiza.",
							},
							{
								ID:           "var-q2",
								Question:     "¿Cuál es el tipo de dato de \"Hola Mundo\"?",
								Options:      []string{"int", "float", "string", "boolean"},
								CorrectIndex: 2,
								Explanation:  "El texto entre comillas es una cadena de caracteres (string).",
							},
							{
								ID:           "var-q3",
								Question:     "Si a = \"3\" y b = \"5\", ¿qué resultado da a + b?",
								Options:      []string{"8", "\"8\"", "\"35\"", "Error"},
								CorrectIndex: 2,
								Explanation:  "Como ambos son strings, el operador + concatena: \"3\" + \"5\" = \"35\"",
							},
						},
					},
					{
						ID:          "var-2",
						Title:       "Strings y Listas",
						Description: "Manipulación de cadenas y estructuras básicas",
						Duration:    35,
						Content: []string{
							"Strings: secuencias de caracteres inmutables",
							"Indexación: string[0] accede al primer carácter",
							"Listas: colecciones ordenadas y mutables [a, b, c]",
						},
						Quiz: []Question{
							{
								ID:           "str-q1",
								Question:     "Si texto = \"Python\", ¿qué devuelve texto[1]?",
								Options:      []string{"P", "y", "Py", "Error"},
								CorrectIndex: 1,
								Explanation:  "Los índices empiezan en 0. texto[0]=\"P\", texto[1]=\"y\"",
							},
							{
								ID:       "str-q2",
								Question: "Si lista = [1, 2, 3], ¿qué hace lista.append(4)?",
								Options: []string{
									"Reemplaza el 3 por 4",
									"Añade 4 al final: [1, 2, 3, 4]",
									"Añade 4 al inicio: [4, 1, 2, 3]",
									"Devuelve [1, 2, 3, 4] sin modificar la original",
								},
								CorrectIndex: 1,
								Explanation:  "append() añade un elemento al final de la lista, modificándola.",
							},
							{
								ID:           "str-q3",
								Question:     "¿Cuál es el resultado de len(\"Hola\")?",
								Options:      []string{"3", "4", "5", "\"Hola\""},
								CorrectIndex: 1,
								Explanation:  "len() devuelve la cantidad de caracteres. \"Hola\" tiene 4 letras.",
							},
						},
					},
				},
			},
			{
				ID:    "funciones",
				Title: "Funciones",
				Lessons: []Lesson{
					{
						ID:          "func-1",
						Title:       "Definición y Llamada de Funciones",
						Description: "Crear funciones reutilizables con parámetros",
						Duration:    35,
						Content: []string{
							"def nombre_funcion(parametros):",
							"    código",
							"    return valor",
							"Las funciones permiten reutilizar código",
						},
						Quiz: []Question{
							{
								ID:           "func-q1",
								Question:     "¿Qué imprime este código?\ndef suma(a, b):\n    return a + b\nprint(suma(3, 4))",
								Options:      []string{"3", "4", "7", "suma(3, 4)"},
								CorrectIndex: 2,
								Explanation:  "La función suma recibe 3 y 4, retorna 3+4=7, y print lo muestra.",
							},
							{
								ID:       "func-q2",
								Question: "¿Cuál es la diferencia entre parámetro y argumento?",
								Options: []string{
									"Son lo mismo",
									"Parámetro es en la definición, argumento es en la llamada",
									"Argumento es en la definición, parámetro es en la llamada",
									"Parámetro es para strings, argumento para números",
								},
								CorrectIndex: 1,
								Explanation:  "def func(parametro) - en definición. func(argumento) - en llamada.",
							},
						},
					},
				},
			},
			{
				ID:    "estructuras",
				Title: "Estructuras de Control",
				Lessons: []Lesson{
					{
						ID:          "control-1",
						Title:       "Condicionales y Bucles",
						Description: "if/else, while, for",
						Duration:    40,
						Content: []string{
							"if condicion: / elif: / else:",
							"while condicion: (repite mientras sea verdadero)",
							"for elemento in secuencia: (itera sobre elementos)",
						},
						Quiz: []Question{
							{
								ID:           "ctrl-q1",
								Question:     "¿Cuántas veces se ejecuta el print?\nfor i in range(5):\n    print(i)",
								Options:      []string{"4", "5", "6", "Infinitas"},
								CorrectIndex: 1,
								Explanation:  "range(5) genera 0,1,2,3,4 - cinco valores, cinco iteraciones.",
							},
							{
								ID:           "ctrl-q2",
								Question:     "¿Qué imprime?\nx = 10\nif x > 5:\n    print(\"A\")\nelif x > 8:\n    print(\"B\")\nelse:\n    print(\"C\")",
								Options:      []string{"A", "B", "A y B", "C"},
								CorrectIndex: 0,
								Explanation:  "x=10 > 5 es True, imprime \"A\" y sale. El elif no se evalúa porque el if ya fue verdadero.",
							},
							{
								ID:       "ctrl-q3",
								Question: "¿Qué hace break en un bucle?",
								Options: []string{
									"Pausa el bucle temporalmente",
									"Termina el bucle inmediatamente",
									"Salta a la siguiente iteración",
									"Reinicia el bucle",
								},
								CorrectIndex: 1,
								Explanation:  "break termina el bucle. continue salta a la siguiente iteración.",
							},
						},
					},
				},
			},
			{
				ID:    "colecciones",
				Title: "Colecciones",
				Lessons: []Lesson{
					{
						ID:          "col-1",
						Title:       "Diccionarios y Conjuntos",
						Description: "Estructuras de datos clave-valor y conjuntos",
						Duration:    35,
						Content: []string{
							"Diccionario: {clave: valor} - acceso por clave",
							"Conjunto (set): {a, b, c} - elementos únicos",
							"Tupla: (a, b, c) - inmutable",
						},
						Quiz: []Question{
							{
								ID:           "col-q1",
								Question:     "Si d = {\"a\": 1, \"b\": 2}, ¿qué devuelve d[\"a\"]?",
								Options:      []string{"1", "2", "\"a\"", "{\"a\": 1}"},
								CorrectIndex: 0,
								Explanation:  "d[\"a\"] accede al valor asociado a la clave \"a\", que es 1.",
							},
							{
								ID:           "col-q2",
								Question:     "¿Cuál es el resultado de set([1, 2, 2, 3, 3, 3])?",
								Options:      []string{"{1, 2, 2, 3, 3, 3}", "{1, 2, 3}", "[1, 2, 3]", "Error"},
								CorrectIndex: 1,
								Explanation:  "Un set elimina duplicados, quedando solo {1, 2, 3}",
							},
						},
					},
				},
			},
			{
				ID:    "arreglos",
				Title: "Arreglos N-dimensionales",
				Lessons: []Lesson{
					{
						ID:          "arr-1",
						Title:       "Matrices y Arreglos 2D",
						Description: "Listas anidadas y acceso a elementos",
						Duration:    35,
						Content: []string{
							"Matriz: lista de listas [[1,2], [3,4]]",
							"Acceso: matriz[fila][columna]",
							"Iteración con bucles anidados",
						},
						Quiz: []Question{
							{
								ID:           "arr-q1",
								Question:     "Si m = [[1,2,3], [4,5,6]], ¿qué es m[1][0]?",
								Options:      []string{"1", "2", "4", "5"},
								CorrectIndex: 2,
								Explanation:  "m[1] = [4,5,6] (segunda fila). m[1][0] = 4 (primer elemento).",
							},
							{
								ID:           "arr-q2",
								Question:     "¿Cuántos elementos tiene una matriz 3x4?",
								Options:      []string{"7", "12", "34", "43"},
								CorrectIndex: 1,
								Explanation:  "Una matriz 3x4 tiene 3 filas × 4 columnas = 12 elementos.",
							},
						},
					},
				},
			},
			{
				ID:    "archivos",
				Title: "Archivos: Entrada y Salida",
				Lessons: []Lesson{
					{
						ID:          "arch-1",
						Title:       "Lectura y Escritura de Archivos",
						Description: "Manejo de archivos de texto",
						Duration:    30,
						Content: []string{
							"open(archivo, modo) - \"r\" leer, \"w\" escribir, \"a\" añadir",
							"with open() as f: - manejo seguro",
							"f.read(), f.readline(), f.write()",
						},
						Quiz: []Question{
							{
								ID:           "arch-q1",
								Question:     "¿Qué modo de apertura borra el contenido existente?",
								Options:      []string{"\"r\"", "\"w\"", "\"a\"", "\"r+\""},
								CorrectIndex: 1,
								Explanation:  "\"w\" (write) crea el archivo o lo sobrescribe si existe. \"a\" (append) añade al final.",
							},
							{
								ID:       "arch-q2",
								Question: "¿Por qué se recomienda usar \"with open()\"?",
								Options: []string{
									"Es más rápido",
									"El archivo se cierra automáticamente al terminar",
									"Permite leer archivos más grandes",
									"Es la única forma de escribir",
								},
								CorrectIndex: 1,
								Explanation:  "with garantiza que el archivo se cierre correctamente incluso si hay errores.",
							},
						},
					},
				},
			},
			{
				ID:    "procesamiento",
				Title: "Procesamiento de Datos",
				Lessons: []Lesson{
					{
						ID:          "proc-1",
						Title:       "Manipulación y Análisis Básico",
						Description: "Filtrado, ordenamiento y búsqueda",
						Duration:    35,
						Content: []string{
							"Filtrar: [x for x in lista if condicion]",
							"Ordenar: sorted(lista) o lista.sort()",
							"Búsqueda: elemento in lista",
						},
						Quiz: []Question{
							{
								ID:           "proc-q1",
								Question:     "¿Qué devuelve [x*2 for x in [1,2,3]]?",
								Options:      []string{"[1, 2, 3]", "[2, 4, 6]", "[1, 4, 9]", "[[2], [4], [6]]"},
								CorrectIndex: 1,
								Explanation:  "List comprehension: multiplica cada elemento por 2. [1*2, 2*2, 3*2] = [2, 4, 6]",
							},
							{
								ID:           "proc-q2",
								Question:     "¿Cuál es el resultado de sorted([3, 1, 4, 1, 5])?",
								Options:      []string{"[5, 4, 3, 1, 1]", "[1, 1, 3, 4, 5]", "[3, 1, 4, 1, 5]", "[1, 3, 4, 5]"},
								CorrectIndex: 1,
								Explanation:  "sorted() devuelve una nueva lista ordenada de menor a mayor.",
							},
						},
					},
				},
			},
		},
	},
}
