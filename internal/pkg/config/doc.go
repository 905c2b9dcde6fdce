// Package config loads and validates the portfolio service configuration.
//
// A single RestConfig is assembled from an optional YAML file, a .env file and
// environment variables, then validated once at startup. Storage backends,
// mail delivery, dashboard sessions and logging are all chosen here so that
// the rest of the code base never inspects the environment directly.
package config
