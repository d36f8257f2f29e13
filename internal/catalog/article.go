package catalog

// Article is a static piece of learning content with embedded quizzes.
type Article struct {
	// Slug uniquely identifies the article, e.g. "open-closed".
	Slug string

	// Title is the display title.
	Title string

	// Principle is the SOLID principle the article covers.
	Principle Principle

	// Summary is a one-to-two sentence teaser shown in the library.
	Summary string

	// Body is the article text. Paragraphs are separated by blank lines.
	Body string

	// QuizNames lists the quizzes embedded in this article, in reading order.
	QuizNames []string
}
