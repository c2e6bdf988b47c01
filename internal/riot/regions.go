package riot

import "strings"

// Cluster is a geographic routing group. Account and match endpoints live on
// clusters; summoner endpoints live on the platform shard itself.
type Cluster string

const (
	ClusterAmericas Cluster = "americas"
	ClusterEurope   Cluster = "europe"
	ClusterAsia     Cluster = "asia"
)

var platformToCluster = map[string]Cluster{
	"na1":  ClusterAmericas,
	"br1":  ClusterAmericas,
	"la1":  ClusterAmericas,
	"la2":  ClusterAmericas,
	"oc1":  ClusterAmericas,
	"euw1": ClusterEurope,
	"eun1": ClusterEurope,
	"tr1":  ClusterEurope,
	"ru":   ClusterEurope,
	"kr":   ClusterAsia,
	"jp1":  ClusterAsia,
}

// ClusterFor maps a platform region (na1, euw1, ...) to its routing cluster.
// Unrecognized platforms fall back to americas rather than failing.
func ClusterFor(platform string) Cluster {
	if c, ok := platformToCluster[strings.ToLower(platform)]; ok {
		return c
	}
	return ClusterAmericas
}
