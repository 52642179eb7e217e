package extractor

// instruction is the fixed prompt sent with every card image. It names the
// target fields and the exact JSON shape the model must reply with. The
// model may leave a field empty when it cannot read it.
const instruction = `Analyze this Aadhaar card image and extract the following details:
- Full name
- Date of birth
- Gender
- Aadhaar number
- Address
- S/O, D/O
Return the information in this JSON format:
{
    "name": "",
    "date_of_birth": "",
    "date_of_birth_year": "",
    "gender": "",
    "aadhaar_number": "",
    "address": "",
    "Parent": "",
    "confidence": 0-100
}`
