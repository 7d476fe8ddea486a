// Package scenario runs declarative conditional chains described in YAML.
// Each scenario is turned into a flow or given chain, concluded once, and
// checked against its expectations. The embedded default set is the
// acceptance corpus of the chain packages.
package scenario
