// Package repository contains data access layer abstractions for form records.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Records are immutable once created: no repository exposes update or delete.
package repository
