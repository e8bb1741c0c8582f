// Package message contains direct messaging between buyers and farmers:
// individual messages and the conversation threads that group them.
package message
