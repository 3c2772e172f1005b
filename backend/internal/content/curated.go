package content

// Config is the curated portion of the garden: the hand-authored nodes and
// links plus the keyword expansion table. It is passed explicitly into the
// assembly pipeline; nothing reads it through package-level state.
type Config struct {
	Nodes    []Node
	Links    []Edge
	Keywords map[string][]string
}

// CategoryCluster maps the first generation's free-form categories onto the
// current cluster set.
var CategoryCluster = map[string]Cluster{
	"Core":            ClusterCore,
	"Web Development": ClusterCareer,
	"Backend":         ClusterCareer,
	"DevOps":          ClusterCareer,
	"AI & Data":       ClusterCareer,
	"Design":          ClusterLibrary,
	"Writing":         ClusterLibrary,
	"Mobile & Apps":   ClusterPlayground,
	"Life":            ClusterLife,
}

// DefaultConfig returns a fresh copy of the curated graph. Callers own the
// returned slices.
func DefaultConfig() *Config {
	return &Config{
		Nodes:    curatedNodes(),
		Links:    curatedLinks(),
		Keywords: KeywordTable(),
	}
}

func curatedNodes() []Node {
	return []Node{
		{
			ID: "me", Title: "Mustafa Kirpik", Type: TypeHub, Cluster: ClusterCore,
			Visibility: TierProfessional, Val: 10,
			Content: "# Hey, I'm Mustafa\n\nI build things for the web. I write about what I learn. This is my corner of the internet — a living, breathing knowledge graph of everything I'm working on and thinking about.\n\n**Navigate** by clicking nodes or searching above. Each node is a blog post, project, or skill.\n\nWelcome to my universe.",
			Meta:    &Meta{Description: "Developer, writer, builder.", Category: "Core"},
		},
		{
			ID: "about", Title: "About Me", Type: TypeNote, Cluster: ClusterCore,
			Visibility: TierProfessional, Val: 5,
			Content: "# About Me\n\nI'm a developer passionate about building beautiful, functional web experiences.\n\n## What I Do\n- Full-stack web development\n- UI/UX design with a focus on dark, immersive interfaces\n- Open source contributions",
			Meta:    &Meta{Description: "Who I am, what I do.", Category: "Core"},
		},
		{
			ID: "uses", Title: "My Setup & Tools", Type: TypeNote, Cluster: ClusterCore,
			Visibility: TierProfessional, Val: 3,
			Content: "# My Setup\n\n## Editor\n- **VS Code** with Vim keybindings\n\n## Terminal\n- Windows Terminal + PowerShell\n\n## Stack\n- TypeScript everywhere\n- React + Vite for frontend\n- Node.js / Bun for backend",
			Meta:    &Meta{Description: "Hardware, software, and tools I use daily.", Category: "Core"},
		},
		{
			ID: "proj-knowledge-graph", Title: "Knowledge Graph", Type: TypeProject, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 6,
			Content: "# Knowledge Graph\n\nThis is the project you're looking at right now. A force-directed knowledge graph that serves as my blog and portfolio.\n\n## Why?\nBecause static portfolio sites are boring. I wanted something that shows how ideas connect — a living map of my work.",
			Meta: &Meta{
				Description: "3D interactive knowledge graph — this very site.",
				Date:        "2025-01", Tags: []string{"React", "Three.js", "TypeScript", "Vite"},
				Link: "#", Category: "Web Development",
			},
		},
		{
			ID: "proj-cli-tool", Title: "DevFlow CLI", Type: TypeProject, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 4,
			Content: "# DevFlow CLI\n\nA command-line tool that automates repetitive development workflows: project scaffolding, build pipelines, environment management, and git automation.",
			Meta: &Meta{
				Description: "A CLI tool for automating dev workflows.",
				Date:        "2024-11", Tags: []string{"Rust", "CLI", "Automation"},
				Link: "#", Category: "Backend",
			},
		},
		{
			ID: "proj-ai-chat", Title: "AI Chat Interface", Type: TypeProject, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 5,
			Content: "# AI Chat Interface\n\nA minimal, beautiful chat interface for interacting with large language models. Streaming responses, markdown rendering, conversation history.",
			Meta: &Meta{
				Description: "A beautiful chat UI for LLM interactions.",
				Date:        "2025-01", Tags: []string{"React", "OpenAI", "Streaming", "TypeScript"},
				Category: "AI & Data",
			},
		},
		{
			ID: "proj-task-app", Title: "Taskflow", Type: TypeProject, Cluster: ClusterPlayground,
			Visibility: TierProfessional, Val: 4,
			Content: "# Taskflow\n\nA minimalist task management app. No bloat. No gamification. Just your tasks, organized simply.",
			Meta: &Meta{
				Description: "A minimalist task management app.",
				Date:        "2024-08", Tags: []string{"React Native", "TypeScript", "SQLite"},
				Category: "Mobile & Apps",
			},
		},
		{
			ID: "proj-api-gateway", Title: "Edge API Gateway", Type: TypeProject, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 4,
			Content: "# Edge API Gateway\n\nA lightweight API gateway designed to run at the edge for minimal latency. Request routing, rate limiting, JWT validation.",
			Meta: &Meta{
				Description: "A lightweight API gateway running at the edge.",
				Date:        "2024-06", Tags: []string{"Go", "Cloudflare Workers", "API"},
				Category: "Backend",
			},
		},
		{
			ID: "blog-why-3d", Title: "Why I Built a 3D Portfolio", Type: TypeBlog, Cluster: ClusterLibrary,
			Visibility: TierExplorer, Val: 3,
			Content: "# Why I Built a 3D Portfolio\n\nMost portfolio sites are the same: a hero section, an about section, a grid of projects. Clean, professional, forgettable.\n\nMy knowledge isn't a list — it's a **graph**. So I built my portfolio as one.",
			Meta: &Meta{
				Description: "The story behind this unconventional portfolio site.",
				Date:        "2025-01-15", Tags: []string{"portfolio", "3D", "creativity"},
				Category: "Writing",
			},
		},
		{
			ID: "blog-typescript-tricks", Title: "TypeScript Tricks I Use Daily", Type: TypeBlog, Cluster: ClusterCareer,
			Visibility: TierExplorer, Val: 3,
			Content: "# TypeScript Tricks I Use Daily\n\nDiscriminated unions, the `satisfies` operator, template literal types, const assertions. These patterns eliminate entire categories of bugs.",
			Meta: &Meta{
				Description: "Practical TypeScript patterns for real-world code.",
				Date:        "2025-01-10", Tags: []string{"TypeScript", "tips", "patterns"},
				Category: "Web Development",
			},
		},
		{
			ID: "blog-rust-journey", Title: "My Rust Journey: 6 Months In", Type: TypeBlog, Cluster: ClusterLibrary,
			Visibility: TierExplorer, Val: 3,
			Content: "# My Rust Journey: 6 Months In\n\nThe borrow checker is your friend. Cargo is best-in-class. Even if you never use Rust professionally, learning it makes you a better programmer in every language.",
			Meta: &Meta{
				Description: "What I've learned after 6 months of writing Rust.",
				Date:        "2024-12-20", Tags: []string{"Rust", "learning", "systems"},
				Category: "Writing",
			},
		},
		{
			ID: "blog-vite-deep", Title: "Vite Deep Dive", Type: TypeBlog, Cluster: ClusterCareer,
			Visibility: TierExplorer, Val: 3,
			Content: "# Vite Deep Dive\n\nIn development, Vite serves files as native ES modules. No bundling. For production it uses Rollup. A tool fast enough to disappear from your workflow lets you focus on building.",
			Meta: &Meta{
				Description: "Understanding how Vite works under the hood.",
				Date:        "2024-11-15", Tags: []string{"Vite", "bundler", "DX"},
				Category: "Web Development",
			},
		},
		{
			ID: "blog-dark-ui", Title: "Designing Dark UIs That Don't Suck", Type: TypeBlog, Cluster: ClusterLibrary,
			Visibility: TierExplorer, Val: 3,
			Content: "# Designing Dark UIs That Don't Suck\n\nDon't use pure black. Reduce contrast, don't eliminate it. Use elevation with opacity instead of shadows. Let your accent colors pop.",
			Meta: &Meta{
				Description: "Principles for effective dark mode design.",
				Date:        "2024-10-20", Tags: []string{"design", "UI", "dark mode"},
				Category: "Design",
			},
		},
		{
			ID: "skill-react", Title: "React", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 3,
			Content: "# React\n\nMy primary frontend framework. Hooks, Context, Server Components, and the libraries I pair with it.",
			Meta:    &Meta{Description: "Component-based UI library.", Tags: []string{"frontend", "library"}, Category: "Web Development"},
		},
		{
			ID: "skill-typescript", Title: "TypeScript", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 3,
			Content: "# TypeScript\n\nTypeScript is my default for all JavaScript projects. Strict mode always on.",
			Meta:    &Meta{Description: "Typed JavaScript at scale.", Tags: []string{"language", "frontend", "backend"}, Category: "Web Development"},
		},
		{
			ID: "skill-rust", Title: "Rust", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 3,
			Meta:       &Meta{Description: "Systems programming language.", Tags: []string{"language", "systems"}, Category: "Backend"},
		},
		{
			ID: "skill-go", Title: "Go", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "Fast, concurrent, simple.", Tags: []string{"language", "backend"}, Category: "Backend"},
		},
		{
			ID: "skill-threejs", Title: "Three.js", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "3D graphics in the browser.", Tags: []string{"3D", "graphics", "frontend"}, Category: "Web Development"},
		},
		{
			ID: "skill-tailwind", Title: "Tailwind CSS", Type: TypeSkill, Cluster: ClusterLibrary,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "Utility-first CSS framework.", Tags: []string{"CSS", "styling"}, Category: "Design"},
		},
		{
			ID: "skill-docker", Title: "Docker", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "Containerization platform.", Tags: []string{"devops", "containers"}, Category: "DevOps"},
		},
		{
			ID: "skill-figma", Title: "Figma", Type: TypeSkill, Cluster: ClusterLibrary,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "UI design tool.", Tags: []string{"design", "UI"}, Category: "Design"},
		},
		{
			ID: "skill-node", Title: "Node.js", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "JavaScript runtime for the server.", Tags: []string{"runtime", "backend"}, Category: "Backend"},
		},
		{
			ID: "skill-python", Title: "Python", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "Data science and scripting.", Tags: []string{"language", "data"}, Category: "AI & Data"},
		},
		{
			ID: "skill-git", Title: "Git", Type: TypeSkill, Cluster: ClusterCareer,
			Visibility: TierProfessional, Val: 2,
			Meta:       &Meta{Description: "Version control.", Tags: []string{"devops", "workflow"}, Category: "DevOps"},
		},
	}
}

func curatedLinks() []Edge {
	return []Edge{
		// Hub to core notes
		{Source: "me", Target: "about"},
		{Source: "me", Target: "uses"},

		// Projects from hub
		{Source: "me", Target: "proj-knowledge-graph"},
		{Source: "me", Target: "proj-cli-tool"},
		{Source: "me", Target: "proj-ai-chat"},
		{Source: "me", Target: "proj-task-app"},
		{Source: "me", Target: "proj-api-gateway"},

		// Blog posts from hub
		{Source: "me", Target: "blog-why-3d"},
		{Source: "me", Target: "blog-typescript-tricks"},
		{Source: "me", Target: "blog-rust-journey"},
		{Source: "me", Target: "blog-vite-deep"},
		{Source: "me", Target: "blog-dark-ui"},

		// Project -> skill connections
		{Source: "proj-knowledge-graph", Target: "skill-react"},
		{Source: "proj-knowledge-graph", Target: "skill-typescript"},
		{Source: "proj-knowledge-graph", Target: "skill-threejs"},
		{Source: "proj-knowledge-graph", Target: "skill-tailwind"},
		{Source: "proj-cli-tool", Target: "skill-rust"},
		{Source: "proj-ai-chat", Target: "skill-react"},
		{Source: "proj-ai-chat", Target: "skill-typescript"},
		{Source: "proj-ai-chat", Target: "skill-python"},
		{Source: "proj-task-app", Target: "skill-react"},
		{Source: "proj-task-app", Target: "skill-typescript"},
		{Source: "proj-api-gateway", Target: "skill-go"},
		{Source: "proj-api-gateway", Target: "skill-docker"},

		// Blog -> skill/project connections
		{Source: "blog-why-3d", Target: "proj-knowledge-graph"},
		{Source: "blog-why-3d", Target: "skill-threejs"},
		{Source: "blog-typescript-tricks", Target: "skill-typescript"},
		{Source: "blog-rust-journey", Target: "skill-rust"},
		{Source: "blog-rust-journey", Target: "proj-cli-tool"},
		{Source: "blog-vite-deep", Target: "skill-react"},
		{Source: "blog-dark-ui", Target: "skill-tailwind"},
		{Source: "blog-dark-ui", Target: "skill-figma"},

		// Skill -> skill connections
		{Source: "skill-react", Target: "skill-typescript"},
		{Source: "skill-react", Target: "skill-tailwind"},
		{Source: "skill-react", Target: "skill-node"},
		{Source: "skill-typescript", Target: "skill-node"},
		{Source: "skill-rust", Target: "skill-go"},
		{Source: "skill-docker", Target: "skill-git"},
		{Source: "skill-python", Target: "skill-node"},

		// Notes to skills
		{Source: "about", Target: "skill-react"},
		{Source: "about", Target: "skill-rust"},
		{Source: "uses", Target: "skill-typescript"},
		{Source: "uses", Target: "skill-git"},
		{Source: "uses", Target: "skill-docker"},
	}
}
