// Package extractors implements document classification and per-kind
// record extraction for the Aion client data formats.
//
// Classification is a pure function of document shape: a document with
// any <string> node is a string document, else any <client_item> node
// makes it an item document, else it is "other". Other documents are
// not sub-classified up front; the Registry routes them to the NPC,
// quest or generic extractor lazily during the entity pass.
package extractors
