// Package download fetches dataset archives and extracts them into a data
// root.
//
// Each dataset describes its remote artifacts as RemoteFile descriptors: the
// archive name, URL, expected MD5 checksum, archive kind, and destination
// subdirectory. The Downloader verifies the archive checksum while streaming
// it to disk, extracts zip and tar.gz archives, and optionally removes the
// archive afterwards. A file lock on the data root keeps two processes from
// extracting into the same tree at once.
//
// Datasets whose audio cannot be fetched (RWC, MedleyDB) attach an
// instructions message to their descriptors instead of a URL; the Downloader
// surfaces those messages for the CLI to print.
package download
