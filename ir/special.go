package ir

// The "repo" parameter is special-cased in one place rather than
// scattered through the pipeline: it accepts several representations of a
// repository, and its description is fixed regardless of input.
const (
	RepoTypeTag     = "Integer, String, Hash, Repository"
	RepoDescription = "A GitHub repository."
)
