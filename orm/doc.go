/*
Package orm provides an easy to use object persistence layer on top of
a key-value store.

A ModelBucket stores entities of a single type under a common key
prefix. Buckets can generate primary keys from a sequence and maintain
secondary indexes, which allow enumeration of entities by an attribute,
for example all bonds held by an owner.
*/
package orm
