package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// pinsDir holds one file per fetched rev, naming the checkout it resolved to.
const pinsDir = ".pins"

// FetchedCorpus describes a fixture checkout in the cache.
type FetchedCorpus struct {
	Dir     string
	Version string
	Commit  string
}

// FetchFixtures clones the corpus named by src into cacheDir and checks out
// the pinned revision. Checkouts are keyed by version, and every rev that was
// fetched once is recorded, so a second fetch of the same rev (full hash,
// short hash or symbolic) is served from the cache without cloning. Tags and
// branches always go back to the origin.
func FetchFixtures(cacheDir string, src GitSource) (*FetchedCorpus, error) {
	url := strings.TrimSpace(src.URL)
	if url == "" {
		return nil, fmt.Errorf("fixtures: git URL required")
	}
	if strings.TrimSpace(cacheDir) == "" {
		return nil, fmt.Errorf("fixtures: cache directory required")
	}
	baseDir := filepath.Join(cacheDir, "fixtures", sanitizePathSegment(repoName(url)))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}

	rev := strings.TrimSpace(src.Rev)
	if rev != "" {
		if corpus, ok := cachedCorpus(baseDir, rev); ok {
			return corpus, nil
		}
	}
	corpus, err := cloneCorpus(baseDir, url, src)
	if err != nil {
		return nil, err
	}
	if rev != "" {
		if err := recordPin(baseDir, rev, corpus); err != nil {
			return nil, err
		}
	}
	return corpus, nil
}

// cachedCorpus resolves rev through its pin file. A pin whose checkout has
// been removed is ignored.
func cachedCorpus(baseDir, rev string) (*FetchedCorpus, bool) {
	data, err := os.ReadFile(pinPath(baseDir, rev))
	if err != nil {
		return nil, false
	}
	version, commit, ok := strings.Cut(strings.TrimSpace(string(data)), "\n")
	if !ok || version == "" || commit == "" {
		return nil, false
	}
	dir := filepath.Join(baseDir, sanitizePathSegment(version))
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, false
	}
	return &FetchedCorpus{Dir: dir, Version: version, Commit: commit}, true
}

func recordPin(baseDir, rev string, corpus *FetchedCorpus) error {
	path := pinPath(baseDir, rev)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(corpus.Version+"\n"+corpus.Commit+"\n"), 0o644)
}

func pinPath(baseDir, rev string) string {
	return filepath.Join(baseDir, pinsDir, sanitizePathSegment(rev))
}

// cloneCorpus clones url into a scratch directory under baseDir, resolves
// the requested revision and moves the checkout to its version directory.
// An existing checkout of the same version is reused.
func cloneCorpus(baseDir, url string, src GitSource) (*FetchedCorpus, error) {
	revision, descriptor, err := gitRevisionFromSource(src)
	if err != nil {
		return nil, err
	}

	scratch, err := os.MkdirTemp(baseDir, "clone-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(scratch)
	workDir := filepath.Join(scratch, "corpus")

	repo, err := git.PlainClone(workDir, false, &git.CloneOptions{URL: url})
	if err != nil {
		return nil, fmt.Errorf("fixtures: git clone %s: %w", url, err)
	}
	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		return nil, fmt.Errorf("fixtures: resolve revision %s: %w", revision, err)
	}

	commit := hash.String()
	corpus := &FetchedCorpus{Version: gitPinnedVersion(descriptor, commit), Commit: commit}
	corpus.Dir = filepath.Join(baseDir, sanitizePathSegment(corpus.Version))
	if info, err := os.Stat(corpus.Dir); err == nil && info.IsDir() {
		return corpus, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		return nil, fmt.Errorf("fixtures: git checkout %s: %w", descriptor, err)
	}
	if err := os.Rename(workDir, corpus.Dir); err != nil {
		return nil, err
	}
	return corpus, nil
}

// gitPinnedVersion names a checkout: the commit itself when the rev was a
// full hash, rev@commit otherwise.
func gitPinnedVersion(descriptor, commit string) string {
	commit = strings.TrimSpace(commit)
	descriptor = strings.TrimSpace(descriptor)
	if commit == "" {
		return descriptor
	}
	if descriptor == "" || descriptor == commit {
		return commit
	}
	return fmt.Sprintf("%s@%s", descriptor, commit)
}
func gitRevisionFromSource(src GitSource) (plumbing.Revision, string, error) {
	if rev := strings.TrimSpace(src.Rev); rev != "" {
		return plumbing.Revision(rev), rev, nil
	}
	if tag := strings.TrimSpace(src.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), tag, nil
	}
	if branch := strings.TrimSpace(src.Branch); branch != "" {
		return plumbing.Revision("refs/remotes/origin/" + branch), branch, nil
	}
	return "", "", fmt.Errorf("fixtures: git source requires rev, tag, or branch")
}

// repoName derives a cache directory name from a clone URL or path.
func repoName(url string) string {
	name := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if idx := strings.LastIndexAny(name, "/:\\"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
