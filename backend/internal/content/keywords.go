package content

// KeywordTable returns the static expansion table: parent node ID to an
// ordered list of keywords. Each keyword becomes a god_mode leaf node under
// its parent (see Expand).
func KeywordTable() map[string][]string {
	return map[string][]string{
		"skill-react": {
			"Hooks", "JSX", "Virtual DOM", "Context API", "Suspense",
			"Server Components", "React Router", "Redux", "Zustand", "React Query",
			"Error Boundaries", "Portals", "Refs", "Memoization", "Fiber",
			"Concurrent Mode", "Hydration", "Code Splitting", "Lazy Loading",
		},
		"skill-typescript": {
			"Generics", "Utility Types", "Type Guards", "Mapped Types", "Enums",
			"Decorators", "Declaration Files", "Strict Mode", "Conditional Types",
			"Template Literals", "Discriminated Unions", "Type Inference", "Compiler API",
			"satisfies", "Branded Types", "Infer Keyword",
		},
		"skill-rust": {
			"Ownership", "Borrowing", "Lifetimes", "Traits", "Pattern Matching",
			"Cargo", "Tokio", "Serde", "Macros", "Error Handling",
			"Unsafe Rust", "FFI", "WebAssembly", "Actix Web", "Embedded",
		},
		"skill-go": {
			"Goroutines", "Channels", "Interfaces", "Go Modules", "Error Handling",
			"Gin", "Context Package", "Testing", "Concurrency", "Reflection",
			"Generics", "Build Tags", "Profiling",
		},
		"skill-threejs": {
			"Scene", "Camera", "Renderer", "Mesh", "Geometry",
			"Materials", "Lighting", "Shadows", "Raycasting", "Post Processing",
			"Shaders", "GLSL", "OrbitControls", "Textures", "Animation Loop",
		},
		"skill-tailwind": {
			"Utility Classes", "Responsive Design", "Dark Mode", "Plugins",
			"Arbitrary Values", "JIT Compiler", "Customization", "Preflight",
			"Container Queries", "Animations", "Transitions",
		},
		"skill-docker": {
			"Dockerfile", "Compose", "Volumes", "Networks", "Images",
			"Containers", "Registry", "Multi-stage Builds", "Health Checks",
			"Swarm", "Overlay Network", "Secrets",
		},
		"skill-node": {
			"Express.js", "Fastify", "Event Loop", "Streams", "Cluster",
			"Worker Threads", "NPM", "Middleware", "File System", "Buffers",
			"Child Processes", "REPL", "ESM Modules",
		},
		"skill-python": {
			"NumPy", "Pandas", "FastAPI", "Django", "Flask",
			"Asyncio", "Decorators", "Type Hints", "Poetry", "Pydantic",
			"SQLAlchemy", "Celery", "Jupyter", "pytest",
		},
		"skill-figma": {
			"Components", "Auto Layout", "Variants", "Prototyping",
			"Design Tokens", "Plugins", "Grids", "Typography", "Color Styles",
		},
		"skill-git": {
			"Branching", "Merging", "Rebasing", "Cherry Pick", "Stash",
			"Hooks", "Submodules", "Bisect", "Reflog", "Worktrees",
		},
		"proj-knowledge-graph": {
			"Force Layout", "d3-force", "3D Rendering", "WebGL", "Camera Controls",
			"Node Physics", "Graph Data", "Particle Effects", "Glassmorphism",
		},
		"proj-cli-tool": {
			"Argument Parsing", "Templates", "Scaffolding", "Build Pipeline",
			"Environment Variables", "Git Automation", "Config Files",
		},
		"proj-ai-chat": {
			"Streaming API", "Token Rendering", "Chat History", "Markdown Render",
			"Syntax Highlighting", "Local Storage", "Dark Theme", "Animations",
		},
		"proj-task-app": {
			"Drag & Drop", "Date Parsing", "Offline First", "SQLite",
			"Widget Support", "Minimal UI", "Sync",
		},
		"proj-api-gateway": {
			"Request Routing", "Rate Limiting", "JWT Validation", "Edge Computing",
			"Load Balancing", "Analytics", "Cloudflare Workers",
		},
		"blog-why-3d": {
			"Creativity", "Portfolio Design", "Memorable UX", "Connections",
			"Interactive", "3D Web",
		},
		"blog-typescript-tricks": {
			"Type Safety", "Patterns", "Best Practices", "DX",
			"Discriminated Unions", "Const Assertions",
		},
		"blog-rust-journey": {
			"Borrow Checker", "Cargo", "Community", "CLI Building",
			"Web Scraping", "HTTP Server",
		},
		"blog-vite-deep": {
			"ESM", "HMR", "Rollup", "Tree Shaking",
			"Code Splitting", "Dev Server",
		},
		"blog-dark-ui": {
			"Color Theory", "Elevation", "Contrast", "Glassmorphism",
			"Accent Colors", "Typography",
		},
		"about": {
			"Full Stack", "Open Source", "UI/UX", "DX Focus",
			"Learning", "Building", "Writing",
		},
		"uses": {
			"VS Code", "Vim Keybindings", "Terminal", "Dual Monitor",
			"Mechanical Keyboard", "Oh My Posh",
		},
	}
}
