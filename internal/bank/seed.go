package bank

// Seed returns the built-in demonstration catalogue. It is used until the
// learner generates questions with the AI generator.
func Seed() *Bank {
	return New(seedQuestions)
}

var seedQuestions = []Question{
	{
		ID:            "1",
		Text:          "What is the derivative of sin(x) with respect to x?",
		Type:          TypeMultipleChoice,
		Subject:       "Mathematics",
		Topic:         "Calculus",
		Difficulty:    DifficultyEasy,
		Options:       []string{"cos(x)", "-cos(x)", "sin(x)", "-sin(x)"},
		CorrectAnswer: "cos(x)",
		Explanation:   "The derivative of sin(x) is cos(x). This is a fundamental trigonometric derivative.",
		Points:        5,
		TimeLimit:     2,
	},
	{
		ID:            "2",
		Text:          "A ball is thrown upward with an initial velocity of 20 m/s. Calculate the maximum height reached. (g = 10 m/s^2)",
		Type:          TypeNumerical,
		Subject:       "Physics",
		Topic:         "Kinematics",
		Difficulty:    DifficultyMedium,
		CorrectAnswer: "20",
		Explanation:   "Using v^2 = u^2 + 2as, at maximum height v = 0. So 0 = 400 - 2*10*h, therefore h = 20m",
		Points:        10,
		TimeLimit:     5,
	},
	{
		ID:            "3",
		Text:          "Explain the process of photosynthesis in plants.",
		Type:          TypeShortAnswer,
		Subject:       "Biology",
		Topic:         "Plant Biology",
		Difficulty:    DifficultyEasy,
		CorrectAnswer: "Photosynthesis is the process by which plants convert light energy, carbon dioxide, and water into glucose and oxygen using chlorophyll.",
		Explanation:   "This process occurs in chloroplasts and is essential for plant survival and oxygen production.",
		Points:        8,
		TimeLimit:     3,
	},
	{
		ID:            "4",
		Text:          "What is the chemical formula for water?",
		Type:          TypeMultipleChoice,
		Subject:       "Chemistry",
		Topic:         "Basic Chemistry",
		Difficulty:    DifficultyEasy,
		Options:       []string{"H2O", "CO2", "NaCl", "CH4"},
		CorrectAnswer: "H2O",
		Explanation:   "Water consists of two hydrogen atoms and one oxygen atom.",
		Points:        3,
		TimeLimit:     1,
	},
	{
		ID:            "5",
		Text:          "Solve the quadratic equation: x^2 - 5x + 6 = 0",
		Type:          TypeNumerical,
		Subject:       "Mathematics",
		Topic:         "Algebra",
		Difficulty:    DifficultyMedium,
		CorrectAnswer: "x = 2, 3",
		Explanation:   "Factoring: (x-2)(x-3) = 0, so x = 2 or x = 3",
		Points:        8,
		TimeLimit:     4,
	},
	{
		ID:            "6",
		Text:          "Describe Newton's three laws of motion and provide real-world examples for each.",
		Type:          TypeLongAnswer,
		Subject:       "Physics",
		Topic:         "Laws of Motion",
		Difficulty:    DifficultyHard,
		CorrectAnswer: "1. First Law (Inertia): Objects at rest stay at rest, objects in motion stay in motion unless acted upon by an external force. Example: A book on a table stays put until someone pushes it. 2. Second Law: F = ma. The acceleration of an object is directly proportional to the net force and inversely proportional to its mass. Example: Pushing a car vs pushing a bicycle with same force. 3. Third Law: For every action, there is an equal and opposite reaction. Example: Walking - you push back on the ground, ground pushes forward on you.",
		Explanation:   "These laws form the foundation of classical mechanics and explain motion in everyday life.",
		Points:        15,
		TimeLimit:     10,
	},
}
