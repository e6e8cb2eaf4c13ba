package intel

import "strings"

// completions is a static per-command table for inline ghost-text
// completion of half-typed commands.
var completions = map[string][]string{
	"git":    {"git status", "git add .", `git commit -m ""`, "git push", "git pull", "git log --oneline", "git checkout -b ", "git branch -a", "git stash", "git diff"},
	"npm":    {"npm install", "npm run dev", "npm run build", "npm run test", "npm start", "npm init", "npm publish"},
	"ls":     {"ls -la", "ls -lh", "ls -a"},
	"cd":     {"cd ..", "cd ~", "cd /"},
	"docker": {"docker ps", "docker build .", "docker run ", "docker-compose up", "docker-compose down"},
	"python": {"python --version", "python3 -m venv venv", "python3 -m pip install -r requirements.txt"},
	"pip":    {"pip install ", "pip install -r requirements.txt", "pip list", "pip freeze > requirements.txt"},
	"cargo":  {"cargo build", "cargo run", "cargo test", "cargo check", "cargo fmt"},
	"make":   {"make", "make install", "make clean", "make test"},
	"ssh":    {"ssh -i ", "ssh user@host"},
	"curl":   {"curl -X GET ", `curl -X POST -H "Content-Type: application/json" -d `},
	"grep":   {`grep -r "" .`, `grep -n "" `},
	"find":   {`find . -name ""`, `find . -type f -name "*.ts"`},
	"cat":    {"cat package.json", "cat README.md", "cat .env"},
	"mkdir":  {"mkdir -p "},
	"rm":     {"rm -rf ", "rm -f "},
	"cp":     {"cp -r "},
	"mv":     {"mv "},
	"chmod":  {"chmod +x ", "chmod 755 "},
	"sudo":   {"sudo apt-get install ", "sudo npm install -g ", "sudo systemctl "},
	"yarn":   {"yarn install", "yarn dev", "yarn build", "yarn test", "yarn add "},
	"pnpm":   {"pnpm install", "pnpm dev", "pnpm build", "pnpm add "},
	"gh":     {"gh repo clone ", "gh repo fork ", "gh pr create", "gh pr list", "gh issue list"},
}

// completionOrder fixes iteration order over the table so completion is
// deterministic.
var completionOrder = []string{
	"git", "npm", "ls", "cd", "docker", "python", "pip", "cargo", "make",
	"ssh", "curl", "grep", "find", "cat", "mkdir", "rm", "cp", "mv",
	"chmod", "sudo", "yarn", "pnpm", "gh",
}

// Complete returns the remainder that would extend input to a full command,
// or "" when nothing applies. History wins (most recent first), then the
// table for the first typed word, then any table entry.
func Complete(input string, history []string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	for i := len(history) - 1; i >= 0; i-- {
		if h := history[i]; strings.HasPrefix(h, input) && h != input {
			return h[len(input):]
		}
	}
	first := strings.ToLower(firstToken(input))
	if cands, ok := completions[first]; ok {
		for _, c := range cands {
			if strings.HasPrefix(c, input) && c != input {
				return c[len(input):]
			}
		}
	}
	for _, key := range completionOrder {
		for _, c := range completions[key] {
			if strings.HasPrefix(c, input) && c != input {
				return c[len(input):]
			}
		}
	}
	return ""
}

// Completions returns the full candidate commands for the input line's
// suggestion list: history first (newest out front), then every table entry.
func Completions(history []string) []string {
	out := make([]string, 0, len(history)+64)
	seen := make(map[string]bool)
	for i := len(history) - 1; i >= 0; i-- {
		if !seen[history[i]] {
			seen[history[i]] = true
			out = append(out, history[i])
		}
	}
	for _, key := range completionOrder {
		for _, c := range completions[key] {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
