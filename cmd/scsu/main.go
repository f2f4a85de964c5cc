// Command scsu compresses text with the Standard Compression Scheme for
// Unicode and inspects SCSU streams.
//
//	scsu encode --in notes.txt --out notes.scsu
//	scsu decode --format hex --in dump.hex
//	scsu stats --text --samples testdata/russian.txt
//	scsu windows katakana
//	scsu filename encode --encoding base64 --huffman "長いファイル名.txt"
package main

func main() {
	Execute()
}
