package ginternals

import (
	"path"
	"strings"
)

// refsDirName is the directory, relative to the metadata directory,
// that holds the refs/ namespace
const refsDirName = "refs"

// LocalTagFullName returns the full name of a tag
// ex. for `my-tag` returns `refs/tags/my-tag`
func LocalTagFullName(shortName string) string {
	return path.Join(refsDirName, "tags", shortName)
}

// LocalTagShortName returns the short name of a tag
// ex. for refs/tags/my-tag returns my-tag
func LocalTagShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsDirName+"/tags/")
}

// LocalBranchFullName returns the full name of branch
// ex. for `main` returns `refs/heads/main`
func LocalBranchFullName(shortName string) string {
	return path.Join(refsDirName, "heads", shortName)
}

// LocalBranchShortName returns the short name of a branch
// ex. for `refs/heads/main` returns `main`
func LocalBranchShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsDirName+"/heads/")
}

// RemoteBranchFullName returns the full name of a remote-tracking
// branch, ex. for `origin/main` returns `refs/remotes/origin/main`
func RemoteBranchFullName(shortName string) string {
	return path.Join(refsDirName, "remotes", shortName)
}

// RefFullName returns the namespaced path of a bare ref name
func RefFullName(shortName string) string {
	return path.Join(refsDirName, shortName)
}
