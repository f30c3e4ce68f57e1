// Package main provides the entry point for the zonevi command line tool.
// It lets an operator pull a DNS zone from its authoritative server, edit
// the records as a flat text file in their editor, and submit the minimal
// set of additions and deletions needed to make the live zone match the
// edited text, either as an RFC 2136 dynamic update or through the
// PowerDNS HTTP API.
package main
