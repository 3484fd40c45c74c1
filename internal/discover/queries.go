package discover

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
)

// defaultPagePaths are the conventional team-page suffixes tried against a
// lead's website, in order. The page pass stops at the first one that
// produces a contact.
var defaultPagePaths = []string{
	"/about",
	"/team",
	"/about-us",
	"/our-team",
	"/leadership",
	"/people",
	"/founders",
	"/company",
	"/staff",
}

// buildQueries renders the fixed search-query templates for a lead. The
// location is folded in when the lead carries an address.
func buildQueries(lead Lead) []string {
	name := strings.TrimSpace(lead.BusinessName)
	loc := strings.TrimSpace(lead.Address)

	if loc == "" {
		return []string{
			fmt.Sprintf("who are the founders of %s", name),
			fmt.Sprintf("%s CEO founder", name),
			fmt.Sprintf("%s marketing manager operations manager", name),
		}
	}
	return []string{
		fmt.Sprintf("who are the founders of %s in %s", name, loc),
		fmt.Sprintf("%s %s CEO founder", name, loc),
		fmt.Sprintf("%s %s marketing manager operations manager", name, loc),
	}
}

// pageURL joins a lead's website with a conventional path suffix,
// defaulting to https when the stored website has no scheme.
func pageURL(website, suffix string) (string, error) {
	site := strings.TrimSpace(website)
	if !strings.Contains(site, "://") {
		site = "https://" + site
	}

	u, err := url.Parse(site)
	if err != nil {
		return "", eris.Wrapf(err, "discover: parse website %q", website)
	}
	if u.Host == "" {
		return "", eris.Errorf("discover: website %q has no host", website)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + suffix
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
