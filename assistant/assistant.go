package assistant

import (
	"context"
	"strings"
)

// Source is a reading reference attached to a reply
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // book | article | web
}

// Message is one user utterance plus optional study context
type Message struct {
	Content string `json:"content"`
	Subject string `json:"subject,omitempty"`
	PlanID  string `json:"plan_id,omitempty"`
}

// Reply is the assistant's answer
type Reply struct {
	Content         string   `json:"content"`
	Sources         []Source `json:"sources"`
	SuggestedTopics []string `json:"suggested_topics"`
}

// Responder produces a reply for a chat message. The keyword
// implementation is the default; a language-model backend can be
// swapped in without touching call sites.
type Responder interface {
	Respond(ctx context.Context, msg Message) (Reply, error)
}

// KeywordResponder matches normalized keywords against a fixed set of
// canned study replies
type KeywordResponder struct{}

func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{}
}

func (r *KeywordResponder) Respond(_ context.Context, msg Message) (Reply, error) {
	lower := strings.ToLower(msg.Content)

	switch {
	case containsAny(lower, "límite", "limite", "derivada"):
		topic := "derivadas"
		definition := "La derivada de una función f en un punto a se define como el límite: f'(a) = lim(h→0) [f(a+h) - f(a)] / h"
		if strings.Contains(lower, "límite") || strings.Contains(lower, "limite") {
			topic = "límites"
			definition = "El límite de una función f(x) cuando x tiende a a es L si para todo ε > 0 existe δ > 0 tal que si 0 < |x - a| < δ entonces |f(x) - L| < ε."
		}
		return Reply{
			Content: "He encontrado información relevante sobre " + topic + " para tu plan de estudios.\n\n" +
				"**Definición formal:**\n" + definition + "\n\n" +
				"**Temas relacionados que puedo agregar a tu plan:**\n" +
				"- Propiedades de límites\n- Límites laterales\n- Límites notables\n- Continuidad de funciones\n\n" +
				"¿Quieres que agregue alguno de estos temas a tu plan de estudios?",
			Sources: []Source{
				{Title: "Stewart, J. - Cálculo de una variable", URL: "#", Type: "book"},
				{Title: "Khan Academy - Límites", URL: "https://khanacademy.org/math/calculus", Type: "web"},
				{Title: "MIT OpenCourseWare - Single Variable Calculus", URL: "https://ocw.mit.edu", Type: "article"},
			},
			SuggestedTopics: []string{"Propiedades de límites", "Límites laterales", "Límites al infinito", "Continuidad"},
		}, nil

	case containsAny(lower, "integral", "integración"):
		return Reply{
			Content: "Excelente tema. La integración es fundamental en cálculo.\n\n" +
				"**Concepto básico:**\nLa integral definida de f(x) de a hasta b representa el área bajo la curva f(x) entre x=a y x=b.\n\n" +
				"**Técnicas que puedo incluir:**\n" +
				"- Integración por sustitución\n- Integración por partes\n- Fracciones parciales\n- Integrales impropias\n\n" +
				"¿Te gustaría que profundice en alguna técnica específica o la agregue a tu plan?",
			Sources: []Source{
				{Title: "Larson - Cálculo", URL: "#", Type: "book"},
				{Title: "Paul's Online Math Notes", URL: "https://tutorial.math.lamar.edu", Type: "web"},
			},
			SuggestedTopics: []string{"Sustitución trigonométrica", "Integración por partes", "Aplicaciones de integrales"},
		}, nil

	case containsAny(lower, "química", "mol", "estequiometría"):
		return Reply{
			Content: "Puedo ayudarte con temas de química.\n\n" +
				"**Conceptos fundamentales:**\n" +
				"- El mol es la unidad de cantidad de sustancia (6.022 × 10²³ partículas)\n" +
				"- La estequiometría relaciona cantidades de reactivos y productos\n\n" +
				"**Temas disponibles para agregar:**\n" +
				"- Balanceo de ecuaciones químicas\n- Cálculos estequiométricos\n- Reactivo limitante\n- Rendimiento de reacciones\n\n" +
				"¿Qué tema te gustaría explorar más a fondo?",
			Sources: []Source{
				{Title: "Chang - Química General", URL: "#", Type: "book"},
				{Title: "ChemLibreTexts", URL: "https://chem.libretexts.org", Type: "web"},
			},
			SuggestedTopics: []string{"Balanceo de ecuaciones", "Estequiometría", "Gases ideales", "Soluciones"},
		}, nil

	case containsAny(lower, "programación", "python", "código"):
		return Reply{
			Content: "¡La programación es un excelente campo de estudio!\n\n" +
				"**Puedo agregar temas como:**\n" +
				"- Estructuras de datos (listas, diccionarios, conjuntos)\n- Algoritmos básicos (búsqueda, ordenamiento)\n" +
				"- Programación orientada a objetos\n- Manejo de excepciones\n\n" +
				"**Recursos recomendados:**\nLa práctica constante es clave. Te sugiero ejercicios progresivos.\n\n" +
				"¿Quieres que agregue algún tema específico o prefieres un camino de aprendizaje completo?",
			Sources: []Source{
				{Title: "Python.org - Tutorial oficial", URL: "https://docs.python.org/es/3/tutorial/", Type: "web"},
				{Title: "Automate the Boring Stuff", URL: "https://automatetheboringstuff.com", Type: "book"},
			},
			SuggestedTopics: []string{"Variables y tipos", "Estructuras de control", "Funciones", "POO"},
		}, nil

	case containsAny(lower, "agregar", "añadir", "incluir"):
		return Reply{
			Content: "¡Perfecto! Voy a preparar ese contenido para agregarlo a tu plan de estudios.\n\n" +
				"**Lo que haré:**\n" +
				"1. Buscar información en fuentes académicas confiables\n" +
				"2. Estructurar el contenido en lecciones progresivas\n" +
				"3. Crear preguntas de práctica\n" +
				"4. Agregar ejemplos resueltos\n\n" +
				"El contenido estará disponible en tu plan de estudios en la sección correspondiente.\n\n" +
				"¿Hay algún aspecto específico en el que quieras que me enfoque más?",
			Sources:         []Source{},
			SuggestedTopics: []string{"Más ejemplos prácticos", "Ejercicios de refuerzo", "Resumen del tema"},
		}, nil
	}

	return Reply{
		Content: "Entiendo que quieres información sobre \"" + msg.Content + "\".\n\n" +
			"Puedo ayudarte a:\n" +
			"- **Buscar contenido académico** sobre cualquier tema\n" +
			"- **Agregar temas** a tu plan de estudios actual\n" +
			"- **Explicar conceptos** con ejemplos y fuentes confiables\n" +
			"- **Recomendar recursos** de libros y sitios académicos\n\n" +
			"Por favor, dime específicamente:\n" +
			"1. ¿Qué tema quieres estudiar?\n" +
			"2. ¿Qué materia es? (Cálculo, Química, Programación, etc.)\n" +
			"3. ¿Qué nivel de profundidad necesitas?",
		Sources:         []Source{},
		SuggestedTopics: []string{"Cálculo - Límites", "Química - Estequiometría", "Programación - Python"},
	}, nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
