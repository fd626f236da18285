// Package gitpath contains consts and methods to work with paths inside
// the .git directory
package gitpath

// .git/ Files and directories
const (
	DotGitPath      = ".git"
	ConfigPath      = "config"
	DescriptionPath = "description"
	HEADPath        = "HEAD"
	BranchesPath    = "branches"
	ObjectsPath     = "objects"
	RefsPath        = "refs"
	RefsTagsPath    = RefsPath + "/tags"
	RefsHeadsPath   = RefsPath + "/heads"
	RefsRemotesPath = RefsPath + "/remotes"
)
