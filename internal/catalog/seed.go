package catalog

import "fmt"

func init() {
	if err := validateCatalog(seedQuizzes, seedArticles); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	c = buildCatalog(seedQuizzes, seedArticles)
}

var seedQuizzes = []QuizDefinition{
	{
		Name:      "srp-1",
		Principle: PrincipleSRP,
		Prompt:    "A Report type formats output, queries the database, and emails the result. What is the SRP problem?",
		Options: []string{
			"The type is too long to read comfortably",
			"The type has more than one reason to change",
			"The type should be an interface instead",
			"Email should always be asynchronous",
		},
		Meta:        QuizMeta{CorrectAnswers: []string{"The type has more than one reason to change"}},
		Explanation: "SRP is about reasons to change, not line counts. Formatting rules, storage schema, and delivery policy each change independently, so they belong to separate units.",
	},
	{
		Name:      "srp-2",
		Principle: PrincipleSRP,
		Prompt:    "Which are signs that a module violates the Single Responsibility Principle? (select all that apply)",
		Options: []string{
			"Unrelated teams keep editing the same file",
			"Changing a report layout forces a database migration test run",
			"The module exports exactly one function",
			"The module has a descriptive name",
		},
		Meta: QuizMeta{CorrectAnswers: []string{
			"Unrelated teams keep editing the same file",
			"Changing a report layout forces a database migration test run",
		}},
		Explanation: "Merge contention between unrelated actors and cross-concern test fallout both mean the module serves more than one master. Export counts and naming say nothing about responsibility.",
	},
	{
		Name:      "ocp-1",
		Principle: PrincipleOCP,
		Prompt:    "What does \"open for extension, closed for modification\" mean in practice?",
		Options: []string{
			"New behavior is added by writing new code, not by editing shipped code",
			"Classes must be final once released",
			"All fields must be private",
			"Every function needs a configuration flag",
		},
		Meta:        QuizMeta{CorrectAnswers: []string{"New behavior is added by writing new code, not by editing shipped code"}},
		Explanation: "OCP asks for extension points (interfaces, registration, composition) so a new case arrives as a new implementation rather than another branch inside working code.",
	},
	{
		Name:      "ocp-2",
		Principle: PrincipleOCP,
		Prompt:    "A pricing function switches on product kind and grows a new case every sprint. Which refactoring moves it toward OCP?",
		Options: []string{
			"Replace the switch with nested if statements",
			"Introduce a Pricer interface and register one implementation per product kind",
			"Move the switch into a bigger function",
			"Cache the switch result",
		},
		Meta:        QuizMeta{CorrectAnswers: []string{"Introduce a Pricer interface and register one implementation per product kind"}},
		Explanation: "With a Pricer interface, supporting a new product means adding a type that satisfies it. The dispatch code never changes again.",
	},
	{
		Name:      "lsp-1",
		Principle: PrincipleLSP,
		Prompt:    "Square embeds Rectangle but panics in SetWidth when width differs from height. Which principle is violated?",
		Options: []string{
			"Single Responsibility",
			"Open/Closed",
			"Liskov Substitution",
			"Dependency Inversion",
		},
		Meta:        QuizMeta{CorrectAnswers: []string{"Liskov Substitution"}},
		Explanation: "Callers holding a Rectangle may set width and height independently. A substitute that panics on that contract breaks every such caller, which is exactly what LSP forbids.",
	},
	{
		Name:      "lsp-2",
		Principle: PrincipleLSP,
		Prompt:    "Which implementations of io.Reader respect its substitution contract? (select all that apply)",
		Options: []string{
			"One that returns io.EOF exactly when the stream is exhausted",
			"One that returns more bytes than the buffer length",
			"One that reads at most len(p) bytes and reports how many",
			"One that sometimes writes past the end of the slice",
		},
		Meta: QuizMeta{CorrectAnswers: []string{
			"One that returns io.EOF exactly when the stream is exhausted",
			"One that reads at most len(p) bytes and reports how many",
		}},
		Explanation: "io.Reader's documented contract is the substitution contract. Overfilling or overrunning the buffer breaks callers that were written against the interface, not the implementation.",
	},
	{
		Name:      "isp-1",
		Principle: PrincipleISP,
		Prompt:    "A storage interface has fourteen methods and most callers use two. What does ISP recommend?",
		Options: []string{
			"Split it into small, client-focused interfaces",
			"Add default implementations for the unused methods",
			"Document which methods are optional",
			"Rename the interface to reflect all its duties",
		},
		Meta:        QuizMeta{CorrectAnswers: []string{"Split it into small, client-focused interfaces"}},
		Explanation: "Clients should depend only on the methods they call. Small interfaces like io.Reader and io.Writer are the canonical expression of ISP.",
	},
	{
		Name:      "isp-2",
		Principle: PrincipleISP,
		Prompt:    "Why does Go's convention of accepting interfaces at the point of use support ISP?",
		Options: []string{
			"It lets each consumer declare the minimal method set it needs",
			"It makes compilation faster",
			"It avoids heap allocations",
			"It guarantees backward compatibility",
		},
		Meta:        QuizMeta{CorrectAnswers: []string{"It lets each consumer declare the minimal method set it needs"}},
		Explanation: "When the consumer defines the interface, it naturally contains only the methods that consumer calls. Providers satisfy it implicitly without ever importing it.",
	},
	{
		Name:      "dip-1",
		Principle: PrincipleDIP,
		Prompt:    "Which dependency direction does DIP prescribe?",
		Options: []string{
			"High-level policy depends on abstractions; details depend on the same abstractions",
			"Low-level modules depend directly on high-level modules",
			"Everything depends on the database layer",
			"Abstractions depend on concrete implementations",
		},
		Meta:        QuizMeta{CorrectAnswers: []string{"High-level policy depends on abstractions; details depend on the same abstractions"}},
		Explanation: "Both sides point at the abstraction. The business rule owns the interface; the driver, client, or adapter implements it.",
	},
	{
		Name:      "dip-2",
		Principle: PrincipleDIP,
		Prompt:    "A checkout service constructs its own Postgres client inside its constructor. Which changes apply DIP? (select all that apply)",
		Options: []string{
			"Accept a repository interface as a constructor parameter",
			"Define that interface next to the checkout service, shaped by what checkout needs",
			"Make the Postgres client a package-level global",
			"Import the Postgres driver from the checkout package",
		},
		Meta: QuizMeta{CorrectAnswers: []string{
			"Accept a repository interface as a constructor parameter",
			"Define that interface next to the checkout service, shaped by what checkout needs",
		}},
		Explanation: "Inject the dependency and let the high-level package own the abstraction. Globals and direct driver imports keep the arrow pointing the wrong way.",
	},
}

var seedArticles = []Article{
	{
		Slug:      "single-responsibility",
		Title:     "Single Responsibility: One Reason to Change",
		Principle: PrincipleSRP,
		Summary:   "Why \"does one thing\" is the wrong test, and \"answers to one actor\" is the right one.",
		Body: `The Single Responsibility Principle is usually quoted as "a module should do one thing," which sounds like advice about size. It is not. The useful formulation is about change: a module should have one, and only one, reason to change. A reason to change is an actor — a person or group that will show up with requirements.

Consider a Report type that assembles figures from the database, lays them out as a table, and mails them to subscribers. Three different actors own those concerns: the data team owns the schema, the design team owns the layout, and operations owns delivery. Any of them can force an edit to Report, and an edit made for one of them can break the other two.

The fix is rarely clever. Split along actor lines: a query layer, a formatter, a sender. Each piece becomes boring, and boring is the point — a schema migration no longer risks the email template, and the layout can be unit tested without a database.

A practical smell to watch for: unrelated pull requests keep colliding in the same file. Merge conflicts between people who never attend the same meetings are SRP telling you where the seam should be.`,
		QuizNames: []string{"srp-1", "srp-2"},
	},
	{
		Slug:      "open-closed",
		Title:     "Open/Closed: Extending Without Editing",
		Principle: PrincipleOCP,
		Summary:   "Designing extension points so new cases arrive as new code.",
		Body: `The Open/Closed Principle says software entities should be open for extension but closed for modification. Taken literally it sounds impossible — of course code gets edited. The intent is narrower: the code paths that already work should not need to be reopened every time the business adds a case.

The classic offender is the growing switch statement. A pricing function that switches on product kind works fine with three kinds. By the tenth, every new product touches the same function, the same tests, and the same release risk. Each edit can break pricing for products that have been stable for a year.

The cure is an extension point. Define a small interface — Price(order) — and give each product kind its own implementation. Dispatch becomes a map lookup or an injected value, and a new product is a new file plus a registration line. The shipped pricing paths stay byte-for-byte untouched.

Do not pay the abstraction tax up front everywhere. OCP earns its keep in the places that demonstrably keep changing; extracting the interface on the second or third occurrence of the pattern is usually the right moment.`,
		QuizNames: []string{"ocp-1", "ocp-2"},
	},
	{
		Slug:      "liskov-substitution",
		Title:     "Liskov Substitution: Honoring the Contract",
		Principle: PrincipleLSP,
		Summary:   "Substitutes must keep the promises their interface makes.",
		Body: `The Liskov Substitution Principle states that code written against a type must keep working when handed any subtype. In Go, "subtype" reads as "any implementation of the interface": if a function accepts an io.Reader, every Reader you pass it must behave like a Reader.

The textbook violation is Square extending Rectangle. A Rectangle promises that width and height vary independently; a Square cannot keep that promise, so every caller that sets one dimension and measures the other silently breaks. The inheritance relationship looks right in a diagram and is wrong under the contract.

The contract is not just the method signatures. io.Reader's documentation fixes real semantics: read at most len(p) bytes, report the count, return io.EOF at end of stream. An implementation that overfills the buffer compiles cleanly and fails Liskov completely. Signatures are checked by the compiler; contracts are checked by your discipline.

When you find yourself writing "if the reader is actually a *FileReader, then..." inside a consumer, that type check is the debt collection notice for a Liskov violation somewhere upstream.`,
		QuizNames: []string{"lsp-1", "lsp-2"},
	},
	{
		Slug:      "interface-segregation",
		Title:     "Interface Segregation: Small Interfaces Win",
		Principle: PrincipleISP,
		Summary:   "Clients should not be forced to depend on methods they do not use.",
		Body: `The Interface Segregation Principle pushes against fat interfaces. When a storage interface exposes fourteen methods and a caller uses two, that caller is coupled to twelve methods' worth of churn it never asked for — every signature change ripples into mocks and stubs across the codebase.

Go's standard library is a running advertisement for the alternative. io.Reader and io.Writer each have one method, and half the ecosystem composes around them. A function that needs to read bytes asks for a Reader and will accept a file, a network connection, a buffer, or a test fixture without knowing or caring.

The Go convention that makes ISP almost automatic: define interfaces where they are consumed, not where they are implemented. When the consumer writes down the interface, it contains exactly the methods that consumer calls — it cannot grow fat, because fat would be unused. Providers satisfy it implicitly and never import the consumer's package.

Splitting an existing fat interface is mechanical: group the methods by caller, declare one small interface per group, and let the original struct satisfy all of them at once while callers migrate.`,
		QuizNames: []string{"isp-1", "isp-2"},
	},
	{
		Slug:      "dependency-inversion",
		Title:     "Dependency Inversion: Point the Arrows at Abstractions",
		Principle: PrincipleDIP,
		Summary:   "High-level policy should own the interfaces that low-level detail implements.",
		Body: `The Dependency Inversion Principle says high-level modules should not depend on low-level modules; both should depend on abstractions. The surprising half is ownership: the abstraction belongs to the high-level side. A checkout service does not import a database package and adapt to it — it declares the repository interface it needs, and the database package shows up to satisfy it.

The before picture is familiar: a constructor that opens its own Postgres connection. The service is now untestable without a database, unusable with any other store, and recompiled whenever the driver changes. The arrows all point from policy down into detail.

Inverting them takes two moves. First, accept the dependency instead of constructing it — a repository parameter on the constructor. Second, define that repository interface in the checkout package, shaped by checkout's needs (SaveOrder, ReserveStock), not by what the driver happens to offer. The Postgres adapter lives elsewhere and imports nothing from checkout; Go's implicit interface satisfaction makes the inversion free of ceremony.

Done consistently, the dependency graph ends with business rules at the center importing nothing but their own abstractions, and every driver, client, and framework adapter at the edges, replaceable one at a time.`,
		QuizNames: []string{"dip-1", "dip-2"},
	},
}
