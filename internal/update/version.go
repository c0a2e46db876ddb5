package update

import "regexp"

// Matches the upgrade target in Dependabot titles like
// "Bump foo from 1.2.3 to 1.2.4-alpha.1+build.1". The "a0" alternative
// covers Python-style pre-release versions such as "1.2.3a0+210.bafdcd99".
var versionRe = regexp.MustCompile(`to (\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?(a0)?(\+[a-zA-Z0-9.]+)?)`)

// TargetVersion extracts the version a dependency PR bumps to from its
// title. It returns the first match verbatim, or "" when the title does not
// contain a "to <version>" phrase.
func TargetVersion(title string) string {
	m := versionRe.FindStringSubmatch(title)
	if m == nil {
		return ""
	}

	return m[1]
}
