// Package content holds the portfolio entities shown on the public site and
// managed through the dashboard, together with the repository and service
// contracts that operate on them.
package content
