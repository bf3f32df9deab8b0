// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package monitorcompliance

import (
	"fmt"
	"strings"

	"github.com/dograga/compliance-checks/utilities/cai"
)

const userManagedSADomainSuffix = ".iam.gserviceaccount.com"

var recommendations = map[string]string{
	CategoryPublicAccess:   "Remove allUsers and allAuthenticatedUsers members unless the resource is meant to be public",
	CategoryCrossProjectSA: "Review service accounts homed in other projects and revoke the grants that are not needed",
	CategoryExternalMember: "Review members from external domains against the organization sharing policy",
}

// Analyze checks every binding member of every record and returns the issues found
// Records without a policy are counted but yield no issue
func Analyze(scopeID string, records []cai.MergedRecord) Analysis {
	analysis := Analysis{
		ScopeID:                scopeID,
		TotalResourcesAnalyzed: len(records),
		Summary:                make(map[string]int),
	}
	// the cross project rule needs a project to compare against, folder and
	// organization scopes do not carry one
	scopeProject := ""
	if strings.HasPrefix(scopeID, "projects/") {
		scopeProject = strings.TrimPrefix(scopeID, "projects/")
	}

	for _, record := range records {
		if record.Policy == nil {
			continue
		}
		for _, binding := range record.Policy.Bindings {
			for _, member := range binding.Members {
				if issue, found := checkMember(record, binding.Role, member, scopeProject); found {
					analysis.Issues = append(analysis.Issues, issue)
					analysis.Summary[issue.Category]++
				}
			}
		}
	}

	for _, category := range []string{CategoryPublicAccess, CategoryCrossProjectSA, CategoryExternalMember} {
		if analysis.Summary[category] > 0 {
			analysis.Recommendations = append(analysis.Recommendations, recommendations[category])
		}
	}
	return analysis
}

func checkMember(record cai.MergedRecord, role string, member string, scopeProject string) (issue Issue, found bool) {
	issue = Issue{
		ResourceName:       record.ResourceName,
		AssetName:          record.AssetName,
		AssetShortTypeName: cai.GetAssetShortTypeName(record.AssetType),
		ProjectNumber:      record.ProjectNumber,
		Role:               role,
		Member:             member,
	}
	switch {
	case member == "allUsers":
		issue.Category = CategoryPublicAccess
		issue.Severity = SeverityHigh
		issue.Detail = "allUsers grants access to anyone on the internet, no authentication needed"
		return issue, true
	case member == "allAuthenticatedUsers":
		issue.Category = CategoryPublicAccess
		issue.Severity = SeverityMedium
		issue.Detail = "allAuthenticatedUsers grants access to anyone holding a Google account"
		return issue, true
	case strings.HasPrefix(member, "serviceAccount:"):
		domain := memberDomain(member)
		if !strings.HasSuffix(domain, userManagedSADomainSuffix) {
			// google managed service agents, like appspot.gserviceaccount.com
			return Issue{}, false
		}
		saProject := strings.TrimSuffix(domain, userManagedSADomainSuffix)
		if scopeProject == "" || saProject == scopeProject {
			return Issue{}, false
		}
		issue.Category = CategoryCrossProjectSA
		issue.Severity = SeverityMedium
		issue.Detail = fmt.Sprintf("service account homed in project %s has access in project %s", saProject, scopeProject)
		return issue, true
	case strings.HasPrefix(member, "user:"), strings.HasPrefix(member, "group:"), strings.HasPrefix(member, "domain:"):
		domain := memberDomain(member)
		if domain == "" || isTrustedDomain(domain) {
			return Issue{}, false
		}
		issue.Category = CategoryExternalMember
		issue.Severity = SeverityLow
		issue.Detail = fmt.Sprintf("member domain %s is outside the trusted Google domains", domain)
		return issue, true
	}
	return Issue{}, false
}

// memberDomain extracts the domain of a member like user:a@b.com, group:g@b.com,
// serviceAccount:sa@p.iam.gserviceaccount.com or domain:b.com
func memberDomain(member string) string {
	parts := strings.SplitN(member, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	identity := parts[1]
	if atIndex := strings.LastIndex(identity, "@"); atIndex >= 0 {
		return identity[atIndex+1:]
	}
	if parts[0] == "domain" {
		return identity
	}
	return ""
}

func isTrustedDomain(domain string) bool {
	if domain == "google.com" || strings.HasSuffix(domain, ".google.com") {
		return true
	}
	if domain == "googleusercontent.com" || strings.HasSuffix(domain, ".googleusercontent.com") {
		return true
	}
	return strings.HasSuffix(domain, "gserviceaccount.com")
}
